// Package policy answers ownership and participation questions for ads and
// exchange proposals. It is consulted both for display affordances and as the
// authorization gate in front of mutating operations.
package policy

import (
	"obmenBack/internal/models"
)

type Role string

const (
	RoleSender   Role = "sender"
	RoleReceiver Role = "receiver"
	RoleNone     Role = "none"
)

// IsAuthor reports whether the user owns the ad.
func IsAuthor(ad models.Ad, userID int) bool {
	return ad.UserID == userID
}

// ParticipantRole returns the user's position in a proposal. A user cannot be
// both: the workflow rejects proposals where sender equals receiver.
func ParticipantRole(p models.ExchangeProposal, userID int) Role {
	switch userID {
	case p.SenderID:
		return RoleSender
	case p.ReceiverID:
		return RoleReceiver
	}
	return RoleNone
}

// IsParticipant reports whether the user is the sender or the receiver.
func IsParticipant(p models.ExchangeProposal, userID int) bool {
	return ParticipantRole(p, userID) != RoleNone
}
