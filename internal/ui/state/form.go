package state

import (
	"strings"

	"github.com/substratefi/ledgerterm/internal/ledger"
)

// Transfer form field indexes, in focus order.
const (
	FieldFrom = iota
	FieldTo
	FieldAmount
	FieldReference
	fieldCount
)

// TransferForm holds the money-transfer form state: field values, focus,
// validation outcome, and account suggestion state. Err and Success are
// mutually exclusive; at most one is populated at a time.
type TransferForm struct {
	FromAccount string
	ToAccount   string
	Amount      string
	Reference   string

	SelectedField int

	Err     string
	Success string

	// SuggestionIndex is -1 when no suggestion is active. ShowSuggestions is
	// only meaningful while an account field is focused.
	SuggestionIndex int
	ShowSuggestions bool
}

// NewTransferForm returns an empty form with no active suggestion.
func NewTransferForm() TransferForm {
	return TransferForm{SuggestionIndex: -1}
}

// Reset clears the form entirely, including messages.
func (f *TransferForm) Reset() {
	*f = NewTransferForm()
}

// ResetKeepingSuccess clears everything except the success message, used
// after a completed transfer so the confirmation stays visible.
func (f *TransferForm) ResetKeepingSuccess() {
	success := f.Success
	*f = NewTransferForm()
	f.Success = success
}

// FieldValue returns the text of the given field index.
func (f *TransferForm) FieldValue(field int) string {
	switch field {
	case FieldFrom:
		return f.FromAccount
	case FieldTo:
		return f.ToAccount
	case FieldAmount:
		return f.Amount
	case FieldReference:
		return f.Reference
	default:
		return ""
	}
}

func (f *TransferForm) setFieldValue(field int, value string) {
	switch field {
	case FieldFrom:
		f.FromAccount = value
	case FieldTo:
		f.ToAccount = value
	case FieldAmount:
		f.Amount = value
	case FieldReference:
		f.Reference = value
	}
}

// AccountFieldActive reports whether the focused field names an account.
func (f *TransferForm) AccountFieldActive() bool {
	return f.SelectedField <= FieldTo
}

// InsertRune appends a character to the focused field. Editing an account
// field re-opens the suggestion list and drops any active suggestion; other
// fields never offer suggestions.
func (f *TransferForm) InsertRune(r rune) {
	f.setFieldValue(f.SelectedField, f.FieldValue(f.SelectedField)+string(r))
	f.SuggestionIndex = -1
	f.ShowSuggestions = f.AccountFieldActive()
}

// DeleteRune removes the last character of the focused field, with the same
// suggestion-state reset as InsertRune.
func (f *TransferForm) DeleteRune() {
	value := f.FieldValue(f.SelectedField)
	if value != "" {
		runes := []rune(value)
		f.setFieldValue(f.SelectedField, string(runes[:len(runes)-1]))
	}
	f.SuggestionIndex = -1
	f.ShowSuggestions = f.AccountFieldActive()
}

// NextField advances focus, wrapping across the four fields.
func (f *TransferForm) NextField() {
	f.SelectedField = (f.SelectedField + 1) % fieldCount
}

// PrevField retreats focus, wrapping across the four fields.
func (f *TransferForm) PrevField() {
	f.SelectedField = (f.SelectedField + fieldCount - 1) % fieldCount
}

// SuggestAccounts filters the account cache against the supplied text. An
// account matches when the filter is empty or is a case-insensitive
// substring of its id or type label. The cache's original order is
// preserved.
func SuggestAccounts(accounts []ledger.Account, filter string) []ledger.Account {
	if filter == "" {
		return append([]ledger.Account(nil), accounts...)
	}
	lower := strings.ToLower(filter)
	matched := make([]ledger.Account, 0, len(accounts))
	for _, acc := range accounts {
		if strings.Contains(strings.ToLower(acc.ID), lower) ||
			strings.Contains(strings.ToLower(acc.Type.String()), lower) {
			matched = append(matched, acc)
		}
	}
	return matched
}

// Suggestions returns the live match list for the focused account field, or
// nil when a non-account field is focused.
func (f *TransferForm) Suggestions(accounts []ledger.Account) []ledger.Account {
	if !f.AccountFieldActive() {
		return nil
	}
	return SuggestAccounts(accounts, f.FieldValue(f.SelectedField))
}

// NextSuggestion advances circularly through the live match list and writes
// the matched account id into the focused field. No-op when a non-account
// field is focused or nothing matches.
func (f *TransferForm) NextSuggestion(accounts []ledger.Account) {
	matches := f.Suggestions(accounts)
	if len(matches) == 0 {
		return
	}
	f.ShowSuggestions = true
	if f.SuggestionIndex < 0 {
		f.SuggestionIndex = 0
	} else {
		f.SuggestionIndex = (f.SuggestionIndex + 1) % len(matches)
	}
	f.setFieldValue(f.SelectedField, matches[f.SuggestionIndex].ID)
}

// PrevSuggestion retreats circularly through the live match list, entering
// at the last match when no suggestion is active.
func (f *TransferForm) PrevSuggestion(accounts []ledger.Account) {
	matches := f.Suggestions(accounts)
	if len(matches) == 0 {
		return
	}
	f.ShowSuggestions = true
	switch {
	case f.SuggestionIndex < 0, f.SuggestionIndex == 0:
		f.SuggestionIndex = len(matches) - 1
	default:
		f.SuggestionIndex--
	}
	f.setFieldValue(f.SelectedField, matches[f.SuggestionIndex].ID)
}

// AcceptSuggestion clears suggestion state and advances focus by one field,
// whether or not a suggestion was applied.
func (f *TransferForm) AcceptSuggestion() {
	f.SuggestionIndex = -1
	f.ShowSuggestions = false
	f.NextField()
}
