package policy

import (
	"testing"

	"obmenBack/internal/models"
)

func TestIsAuthor(t *testing.T) {
	ad := models.Ad{ID: 1, UserID: 10}
	if !IsAuthor(ad, 10) {
		t.Fatal("owner must be recognized as author")
	}
	if IsAuthor(ad, 11) {
		t.Fatal("non-owner must not be recognized as author")
	}
}

func TestParticipantRole(t *testing.T) {
	p := models.ExchangeProposal{SenderID: 1, ReceiverID: 2}

	if got := ParticipantRole(p, 1); got != RoleSender {
		t.Fatalf("expected sender, got %s", got)
	}
	if got := ParticipantRole(p, 2); got != RoleReceiver {
		t.Fatalf("expected receiver, got %s", got)
	}
	if got := ParticipantRole(p, 3); got != RoleNone {
		t.Fatalf("expected none, got %s", got)
	}
}

func TestIsParticipant(t *testing.T) {
	p := models.ExchangeProposal{SenderID: 1, ReceiverID: 2}
	if !IsParticipant(p, 1) || !IsParticipant(p, 2) {
		t.Fatal("both sender and receiver are participants")
	}
	if IsParticipant(p, 3) {
		t.Fatal("outsider must not be a participant")
	}
}
