package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

func typeText(h *Harness, text string) {
	for _, r := range text {
		h.SendKey(r)
	}
}

// fillField types into the focused field and presses enter. On account
// fields enter advances focus; on the amount and reference fields it
// submits the form.
func fillField(h *Harness, text string) {
	typeText(h, text)
	h.SendSpecial(tea.KeyEnter)
}

// fillForm populates all four fields and submits from the reference field.
func fillForm(h *Harness, from, to, amount, reference string) {
	fillField(h, from)
	fillField(h, to)
	typeText(h, amount)
	h.SendSpecial(tea.KeyDown)
	typeText(h, reference)
	h.SendSpecial(tea.KeyEnter)
}

func TestInvalidAmountKeepsTypedFields(t *testing.T) {
	h, fake := newTestHarness(t)

	h.SendKey('2')
	fillField(h, "a:op")
	fillField(h, "b:op")
	fillField(h, "abc")

	m := h.Model()
	if m.form.Err != "Invalid amount" {
		t.Fatalf("expected invalid amount error, got %q", m.form.Err)
	}
	if m.form.FromAccount != "a:op" || m.form.ToAccount != "b:op" || m.form.Amount != "abc" {
		t.Fatalf("expected typed fields preserved, got %+v", m.form)
	}
	if len(fake.transferred) != 0 {
		t.Fatal("expected no transfer submitted")
	}

	// Fix only the amount and resubmit.
	h.SendSpecial(tea.KeyBackspace)
	h.SendSpecial(tea.KeyBackspace)
	h.SendSpecial(tea.KeyBackspace)
	fillField(h, "500")
	if m.form.Err != "" {
		t.Fatalf("expected resubmit to clear error, got %q", m.form.Err)
	}
	if len(fake.transferred) != 1 {
		t.Fatalf("expected one transfer, got %d", len(fake.transferred))
	}
}

func TestMissingAccountsRejected(t *testing.T) {
	h, fake := newTestHarness(t)

	h.SendKey('2')
	h.SendSpecial(tea.KeyEnter)
	h.SendSpecial(tea.KeyEnter)
	fillField(h, "500")

	m := h.Model()
	if m.form.Err != "Both accounts required" {
		t.Fatalf("expected missing accounts error, got %q", m.form.Err)
	}
	if len(fake.transferred) != 0 {
		t.Fatal("expected no transfer submitted")
	}
}

func TestSuccessfulTransferRecordsHistory(t *testing.T) {
	h, fake := newTestHarness(t)

	h.SendKey('2')
	fillForm(h, "a:op", "b:op", "500", "x")

	m := h.Model()
	if m.form.Err != "" {
		t.Fatalf("unexpected error %q", m.form.Err)
	}
	if m.form.Success != "Success! TX: T1" {
		t.Fatalf("unexpected success message %q", m.form.Success)
	}
	if m.form.FromAccount != "" || m.form.ToAccount != "" || m.form.Amount != "" || m.form.Reference != "" {
		t.Fatalf("expected fields cleared after success, got %+v", m.form)
	}

	if len(m.history) == 0 {
		t.Fatal("expected a history entry")
	}
	entry := m.history[len(m.history)-1]
	for _, want := range []string{"5.00", "a:op", "b:op", "x", "T1"} {
		if !strings.Contains(entry, want) {
			t.Fatalf("history entry %q missing %q", entry, want)
		}
	}

	if len(fake.transferred) != 1 {
		t.Fatalf("expected one transfer, got %d", len(fake.transferred))
	}
	entries := fake.transferred[0]
	if entries[0].AccountID != "a:op" || entries[0].Amount != -500 {
		t.Fatalf("unexpected debit entry %+v", entries[0])
	}
	if entries[1].AccountID != "b:op" || entries[1].Amount != 500 {
		t.Fatalf("unexpected credit entry %+v", entries[1])
	}
}

func TestFailedTransferLeavesFormAndHistoryIntact(t *testing.T) {
	h, fake := newTestHarness(t)
	fake.transferErr = errors.New("insufficient funds")

	h.SendKey('2')
	historyBefore := len(h.Model().history)
	fillForm(h, "a:op", "b:op", "500", "x")

	m := h.Model()
	if !strings.Contains(m.form.Err, "insufficient funds") {
		t.Fatalf("expected failure detail in error, got %q", m.form.Err)
	}
	if m.form.Success != "" {
		t.Fatal("error and success must not coexist")
	}
	if m.form.FromAccount != "a:op" || m.form.Amount != "500" {
		t.Fatalf("expected fields preserved for retry, got %+v", m.form)
	}
	if len(m.history) != historyBefore {
		t.Fatal("failed transfer must not touch history")
	}
}

func TestValidationClearsStaleSuccess(t *testing.T) {
	h, _ := newTestHarness(t)

	h.SendKey('2')
	fillForm(h, "a:op", "b:op", "500", "x")
	if h.Model().form.Success == "" {
		t.Fatal("expected a success message to start from")
	}

	// Form is empty again; submitting from the From field walks to Amount.
	h.SendSpecial(tea.KeyEnter)
	h.SendSpecial(tea.KeyEnter)
	h.SendSpecial(tea.KeyEnter)
	m := h.Model()
	if m.form.SelectedField != uistate.FieldAmount {
		t.Fatalf("expected focus on amount after enter walk, got %d", m.form.SelectedField)
	}
	if m.form.Err != "Invalid amount" {
		t.Fatalf("expected invalid amount on empty form, got %q", m.form.Err)
	}
	if m.form.Success != "" {
		t.Fatal("expected stale success cleared by new submission")
	}
}
