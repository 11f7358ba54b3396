package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/substratefi/ledgerterm/internal/format/table"
	"github.com/substratefi/ledgerterm/internal/ledger"
	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

const breadcrumbSeparator = " → "

// View renders the current frame. It reads model state only; every mutation
// already happened in Update.
func (m *Model) View() string {
	lines := make([]string, 0, 32)
	lines = append(lines, m.renderTabs(), m.renderBreadcrumb(), "")
	lines = append(lines, m.renderBody()...)
	if m.verbose {
		lines = append(lines, "", styles.Info.Render(fmt.Sprintf(
			"%d participants · %d accounts · %d history · %d upcoming",
			len(m.participants), len(m.accounts), len(m.history), len(m.future))))
	}
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render(m.footerText()))
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > m.width {
				lines[i] = truncate.StringWithTail(line, uint(m.width), "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabs() string {
	var b strings.Builder
	for i, v := range uistate.FlatViews() {
		if i > 0 {
			b.WriteString(" ")
		}
		label := fmt.Sprintf(" %d:%s ", i+1, v.Title())
		if v == m.view {
			b.WriteString(styles.ActiveTab.Render(label))
		} else {
			b.WriteString(styles.Tab.Render(label))
		}
	}
	if m.loading {
		b.WriteString("  ")
		b.WriteString(styles.Loading.Render("loading…"))
	}
	return b.String()
}

func (m *Model) renderBreadcrumb() string {
	parts := make([]string, len(m.breadcrumb))
	for i, seg := range m.breadcrumb {
		if i == len(m.breadcrumb)-1 {
			parts[i] = styles.BreadcrumbCurrent.Render(seg.Label)
		} else {
			parts[i] = styles.Breadcrumb.Render(seg.Label)
		}
	}
	return strings.Join(parts, styles.Breadcrumb.Render(breadcrumbSeparator))
}

func (m *Model) renderBody() []string {
	switch m.view {
	case uistate.ViewParticipants:
		return m.renderParticipants()
	case uistate.ViewParticipantDetail:
		return m.renderParticipantDetail()
	case uistate.ViewTransfer:
		return m.renderTransfer()
	case uistate.ViewHistory:
		return m.renderHistory()
	case uistate.ViewFuture:
		return m.renderFuture()
	default:
		return nil
	}
}

func (m *Model) renderParticipants() []string {
	var lines []string
	if m.filterActive || m.filterQuery != "" {
		prompt := styles.FilterPrompt.Render("/ ") + styles.Filter.Render(m.filterQuery)
		if m.filterActive {
			prompt += m.inputCursor.View()
		}
		lines = append(lines, prompt)
	}
	visible := m.visibleParticipants()
	if len(visible) == 0 {
		return append(lines, styles.Info.Render("(no participants)"))
	}
	rows := make([][]string, len(visible))
	for i, p := range visible {
		rows[i] = []string{p.Name, p.Role.String(), p.ID}
	}
	for i, row := range table.Format(rows, nil) {
		if i == m.participantCursor.Pos {
			lines = append(lines, styles.SelectedIndicator.Render("▌ ")+styles.SelectedItem.Render(row))
		} else {
			lines = append(lines, styles.ItemIndicator.Render("  ")+styles.Item.Render(row))
		}
	}
	return lines
}

func (m *Model) renderParticipantDetail() []string {
	d := m.detail
	if d == nil {
		return []string{styles.Info.Render("(no participant loaded)")}
	}
	lines := []string{
		styles.Header.Render(fmt.Sprintf("%s (%s)", d.Info.Name, d.Info.Role)),
		styles.Info.Render("ID: " + d.Info.ID),
	}
	if d.Info.About != "" {
		lines = append(lines, styles.Info.Render("About: "+d.Info.About))
	}
	if len(d.Info.Services) > 0 {
		lines = append(lines, styles.Info.Render("Services: "+strings.Join(d.Info.Services, ", ")))
	}
	if contact := formatContact(d.Info.Contact); contact != "" {
		lines = append(lines, styles.Info.Render("Contact: "+contact))
	}

	lines = append(lines, "", styles.Header.Render("Accounts"))
	if len(d.Accounts) == 0 {
		lines = append(lines, styles.Info.Render("(no accounts)"))
	} else {
		rows := make([][]string, len(d.Accounts))
		for i, acc := range d.Accounts {
			rows[i] = []string{acc.ID, acc.Type.String(), ledger.FormatBalance(acc.Balance)}
		}
		aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
		for _, row := range aligned {
			lines = append(lines, styles.Item.Render("  "+row))
		}
		lines = append(lines, "  Total: "+balanceStyle(d.TotalBalance).Render(ledger.FormatBalance(d.TotalBalance)))
	}

	lines = append(lines, "", styles.Header.Render("Contracts"))
	if len(d.Contracts) == 0 {
		lines = append(lines, styles.Info.Render("(no contracts)"))
	} else {
		for _, c := range d.Contracts {
			lines = append(lines, styles.Item.Render("  "+formatContractLine(c)))
		}
	}
	return lines
}

func formatContractLine(c contractInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", c.Type, c.Description)
	if len(c.Counterparties) > 0 {
		fmt.Fprintf(&b, " with %s", strings.Join(c.Counterparties, ", "))
	}
	if c.NextExecution > 0 {
		fmt.Fprintf(&b, " (next: %s)", formatTimestamp(c.NextExecution))
	}
	return b.String()
}

func formatContact(c ledger.Contact) string {
	var parts []string
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.City != "" && c.Country != "" {
		parts = append(parts, c.City+", "+c.Country)
	} else if c.City != "" {
		parts = append(parts, c.City)
	}
	return strings.Join(parts, " · ")
}

var transferFieldLabels = []string{"From account", "To account", "Amount (cents)", "Reference"}

func (m *Model) renderTransfer() []string {
	lines := []string{styles.Header.Render("New Transfer"), ""}
	for i, label := range transferFieldLabels {
		value := m.form.FieldValue(i)
		if i == m.form.SelectedField {
			lines = append(lines, styles.ActiveFieldLabel.Render("> "+label+": ")+
				styles.Filter.Render(value)+m.inputCursor.View())
		} else {
			lines = append(lines, styles.FieldLabel.Render("  "+label+": ")+styles.Info.Render(value))
		}
	}

	if m.form.ShowSuggestions && m.form.AccountFieldActive() {
		matches := m.form.Suggestions(m.accounts)
		if len(matches) > 0 {
			lines = append(lines, "", styles.Header.Render("Accounts"))
			rows := make([][]string, len(matches))
			for i, acc := range matches {
				rows[i] = []string{acc.ID, acc.Type.String(), ledger.FormatBalance(acc.Balance)}
			}
			aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
			for i, row := range aligned {
				if i == m.form.SuggestionIndex {
					lines = append(lines, styles.SelectedSuggestion.Render("  "+row))
				} else {
					lines = append(lines, styles.Suggestion.Render("  "+row))
				}
			}
		}
	}

	if m.form.Err != "" {
		lines = append(lines, "", styles.Error.Render(m.form.Err))
	}
	if m.form.Success != "" {
		lines = append(lines, "", styles.Success.Render(m.form.Success))
	}
	return lines
}

func (m *Model) renderHistory() []string {
	if len(m.history) == 0 {
		return []string{styles.Info.Render("(no transactions)")}
	}
	lines := make([]string, len(m.history))
	for i, entry := range m.history {
		lines[i] = styles.Item.Render(entry)
	}
	return lines
}

func (m *Model) renderFuture() []string {
	if len(m.future) == 0 {
		return []string{styles.Info.Render("(no upcoming events)")}
	}
	lines := make([]string, len(m.future))
	for i, e := range m.future {
		lines[i] = styles.Item.Render(fmt.Sprintf("%s  [%s] %s",
			formatTimestamp(e.ExecutionTime), e.Type, e.Description))
	}
	return lines
}

func (m *Model) footerText() string {
	switch m.view {
	case uistate.ViewParticipants:
		return "↑/↓ select · enter details · / filter · tab/1-4 views · r refresh · q quit"
	case uistate.ViewParticipantDetail:
		return "b back · tab views · r refresh · q quit"
	case uistate.ViewTransfer:
		return "tab suggestions · enter accept/submit · ↑/↓ fields · esc clear · ←/→ views · q quit"
	default:
		return "tab/1-4 views · r refresh · q quit"
	}
}

func balanceStyle(cents int64) *lipgloss.Style {
	if cents < 0 {
		return styles.NegativeBalance
	}
	return styles.Balance
}

// Timestamps from the ledger are unix milliseconds.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04")
}
