package services

import (
	"context"
	"time"

	"obmenBack/internal/models"
	"obmenBack/internal/policy"
)

type ProposalStore interface {
	CreateProposal(ctx context.Context, p models.ExchangeProposal) (models.ExchangeProposal, error)
	GetProposalByID(ctx context.Context, id int) (models.ExchangeProposal, error)
	ListProposals(ctx context.Context, userID int, role string, statuses []string) ([]models.ExchangeProposal, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type AdGetter interface {
	GetAdByID(ctx context.Context, id int) (models.Ad, error)
}

// Notifier pushes proposal events to a connected user. Implemented by the
// websocket hub in cmd; may be nil when no hub is running.
type Notifier interface {
	NotifyUser(userID int, event models.ProposalEvent)
}

type ProposalService struct {
	ProposalRepo ProposalStore
	AdRepo       AdGetter
	Statuses     []string
	Notifier     Notifier
}

// CreateProposal opens a proposal on someone else's ad. The receiver is the
// ad's owner at creation time; proposing on one's own ad is rejected before
// any store mutation.
func (s *ProposalService) CreateProposal(ctx context.Context, senderID int, adID int) (models.ExchangeProposal, error) {
	ad, err := s.AdRepo.GetAdByID(ctx, adID)
	if err != nil {
		if err == models.ErrAdNotFound {
			return models.ExchangeProposal{}, models.ErrInvalidProposal
		}
		return models.ExchangeProposal{}, err
	}
	if ad.UserID == senderID {
		return models.ExchangeProposal{}, models.ErrInvalidProposal
	}

	proposal := models.ExchangeProposal{
		SenderID:   senderID,
		ReceiverID: ad.UserID,
		AdID:       ad.ID,
		Status:     models.StatusAwaits,
		CreatedAt:  time.Now(),
	}
	created, err := s.ProposalRepo.CreateProposal(ctx, proposal)
	if err != nil {
		return models.ExchangeProposal{}, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyUser(created.ReceiverID, models.ProposalEvent{
			Type:     models.ProposalEventCreated,
			Proposal: created,
		})
	}
	return created, nil
}

func (s *ProposalService) GetProposalByID(ctx context.Context, id int, actorID int) (models.ExchangeProposal, error) {
	proposal, err := s.ProposalRepo.GetProposalByID(ctx, id)
	if err != nil {
		return models.ExchangeProposal{}, err
	}
	if !policy.IsParticipant(proposal, actorID) {
		return models.ExchangeProposal{}, models.ErrUnauthorized
	}
	return proposal, nil
}

// ListProposals returns the user's proposals filtered by role and status.
// Exactly one role narrows to that side; zero or both roles return the union
// of sender-or-receiver matches. The tie-break is deliberate and mirrors the
// list view it replaces.
func (s *ProposalService) ListProposals(ctx context.Context, userID int, roles []string, statuses []string) ([]models.ExchangeProposal, error) {
	role := ""
	if len(roles) == 1 && (roles[0] == string(policy.RoleSender) || roles[0] == string(policy.RoleReceiver)) {
		role = roles[0]
	}
	return s.ProposalRepo.ListProposals(ctx, userID, role, statuses)
}

// UpdateStatus sets a proposal's status. Any configured status is reachable
// from any other: this is a flat single-field machine with no transition
// graph and no terminal lock. Only a participant may update.
func (s *ProposalService) UpdateStatus(ctx context.Context, id int, newStatus string, actorID int) (models.ExchangeProposal, error) {
	proposal, err := s.ProposalRepo.GetProposalByID(ctx, id)
	if err != nil {
		return models.ExchangeProposal{}, err
	}
	if !policy.IsParticipant(proposal, actorID) {
		return models.ExchangeProposal{}, models.ErrUnauthorized
	}
	if !s.statusAllowed(newStatus) {
		return models.ExchangeProposal{}, models.ErrUnknownStatus
	}

	if err := s.ProposalRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return models.ExchangeProposal{}, err
	}
	proposal.Status = newStatus

	if s.Notifier != nil {
		counterparty := proposal.SenderID
		if actorID == proposal.SenderID {
			counterparty = proposal.ReceiverID
		}
		s.Notifier.NotifyUser(counterparty, models.ProposalEvent{
			Type:     models.ProposalEventStatusChanged,
			Proposal: proposal,
		})
	}
	return proposal, nil
}

func (s *ProposalService) statusAllowed(status string) bool {
	for _, v := range s.Statuses {
		if v == status {
			return true
		}
	}
	return false
}
