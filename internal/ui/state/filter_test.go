package state

import (
	"testing"

	"github.com/substratefi/ledgerterm/internal/ledger"
)

func participantsFixture() []ledger.Participant {
	return []ledger.Participant{
		{ID: "p-1", Name: "Acme Fiber"},
		{ID: "p-2", Name: "Borealis Networks"},
		{ID: "p-3", Name: "Acorn Banking"},
	}
}

func TestFilterParticipantsFuzzyMatch(t *testing.T) {
	got := FilterParticipants(participantsFixture(), "acme")
	if len(got) != 1 || got[0].ID != "p-1" {
		t.Fatalf("expected Acme Fiber, got %+v", got)
	}
}

func TestFilterParticipantsFallsBackToIDSubstring(t *testing.T) {
	got := FilterParticipants(participantsFixture(), "p-2")
	if len(got) != 1 || got[0].Name != "Borealis Networks" {
		t.Fatalf("expected Borealis via id substring, got %+v", got)
	}
}

func TestFilterParticipantsEmptyQueryReturnsCopy(t *testing.T) {
	src := participantsFixture()
	got := FilterParticipants(src, "  ")
	if len(got) != len(src) {
		t.Fatalf("expected all participants, got %d", len(got))
	}
	got[0].Name = "changed"
	if src[0].Name != "Acme Fiber" {
		t.Fatal("expected source slice unchanged")
	}
}

func TestFilterParticipantsPreservesOrder(t *testing.T) {
	got := FilterParticipants(participantsFixture(), "ac")
	if len(got) != 2 {
		t.Fatalf("expected two matches, got %d", len(got))
	}
	if got[0].ID != "p-1" || got[1].ID != "p-3" {
		t.Fatalf("expected original order p-1, p-3, got %s, %s", got[0].ID, got[1].ID)
	}
}
