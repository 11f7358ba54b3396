package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/substratefi/ledgerterm/internal/ledger"
	"github.com/substratefi/ledgerterm/internal/logging"
	"github.com/substratefi/ledgerterm/internal/logging/events"
)

// executeTransfer validates the form and submits a two-entry transaction.
// Validation failures keep the typed values so the user can correct them in
// place; a successful submit clears the form but leaves the confirmation
// visible and records the transfer in the local history.
func (m *Model) executeTransfer() {
	form := &m.form
	form.Err = ""
	form.Success = ""

	amount, err := strconv.ParseInt(form.Amount, 10, 64)
	if err != nil {
		form.Err = "Invalid amount"
		events.Transfer.Rejected(form.Err)
		return
	}
	if form.FromAccount == "" || form.ToAccount == "" {
		form.Err = "Both accounts required"
		events.Transfer.Rejected(form.Err)
		return
	}

	entries := []ledger.Entry{
		{AccountID: form.FromAccount, Amount: -amount},
		{AccountID: form.ToAccount, Amount: amount},
	}
	events.Transfer.Submit(form.FromAccount, form.ToAccount, form.Amount)
	tx, err := m.client.Transfer(context.Background(), entries, form.Reference)
	if err != nil {
		logging.Error(err)
		events.Transfer.Failure(err)
		form.Err = fmt.Sprintf("Transfer failed: %v", err)
		return
	}

	m.history = append(m.history, fmt.Sprintf("Transfer %s from %s to %s (ref: %s, tx: %s)",
		ledger.FormatBalance(amount), form.FromAccount, form.ToAccount, form.Reference, tx.ID))
	form.Success = fmt.Sprintf("Success! TX: %s", tx.ID)
	form.ResetKeepingSuccess()
	events.Transfer.Success(tx.ID)

	// Balances moved; the autocomplete cache should show them.
	m.loadAccounts()
}
