package models

import (
	"time"
)

// StatusAwaits is the initial status of every exchange proposal. The full
// status set is configuration, see config.Config.Catalog.Statuses.
const StatusAwaits = "awaits"

type ExchangeProposal struct {
	ID         int        `json:"id"`
	SenderID   int        `json:"sender_id"`
	ReceiverID int        `json:"receiver_id"`
	AdID       int        `json:"ad_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type ProposalListResponse struct {
	Proposals []ExchangeProposal `json:"proposals"`
}

// Proposal event types pushed to connected counterparties.
const (
	ProposalEventCreated       = "proposal_created"
	ProposalEventStatusChanged = "proposal_status_changed"
)

type ProposalEvent struct {
	Type     string           `json:"type"`
	Proposal ExchangeProposal `json:"proposal"`
}
