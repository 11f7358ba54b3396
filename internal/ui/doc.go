// Package ui contains the Bubble Tea program that powers the ledger
// terminal. The Model type focuses on message orchestration while dedicated
// helpers own navigation, data loading, the transfer workflow, and
// rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, window resizes).
//   - Key handling (internal/ui/navigation.go) splits three ways: filter
//     typing on the participants view, form editing on the transfer view,
//     and browse shortcuts everywhere else.
//   - Data loads (internal/ui/loader.go) run synchronously inside Update.
//     By the time a key event's handler returns, every reload it triggered
//     has finished, so the next render never shows a half-applied state.
//     Loads are best-effort: failures log and keep the previous cache.
//
// State ownership:
//   - Pure view-state machinery (view ordering, breadcrumb derivation, the
//     transfer form, list cursors, participant filtering) lives in
//     internal/ui/state and has no knowledge of Bubble Tea or the ledger
//     client.
//   - The Model owns the data caches (participants, accounts, history,
//     future events, drill-down detail) and the one active ledger.Service
//     connection.
//
// Rendering (internal/ui/view.go) reads model state only and styles it with
// the shared theme; column alignment goes through internal/format/table so
// widths are measured on plain text.
package ui
