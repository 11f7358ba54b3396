package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/substratefi/ledgerterm/internal/logging/events"
	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

// handleKeyMsg routes key presses. Filter typing is checked first so query
// characters never collide with shortcut keys; after that the transfer view
// gets its own handler because most printable keys belong to the form there.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		events.UI.Quit()
		return tea.Quit
	}
	if m.filterActive && m.view == uistate.ViewParticipants {
		if m.handleFilterKey(keyMsg) {
			return nil
		}
	}
	if m.view == uistate.ViewTransfer {
		return m.handleTransferKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

// handleBrowseKey covers every view except Transfer.
func (m *Model) handleBrowseKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "q", "esc":
		events.UI.Quit()
		return tea.Quit
	case "tab", "right":
		m.flatNavigate(uistate.NextView(m.view))
	case "shift+tab", "left":
		m.flatNavigate(uistate.PrevView(m.view))
	case "down", "j":
		m.selectNext()
	case "up", "k":
		m.selectPrev()
	case "home":
		if m.view == uistate.ViewParticipants {
			m.participantCursor.Home()
		}
	case "end":
		if m.view == uistate.ViewParticipants {
			m.participantCursor.End(len(m.visibleParticipants()))
		}
	case "enter":
		m.handleEnter()
	case "r":
		m.refreshAll()
	case "b":
		m.navigateBack()
	case "/":
		if m.view == uistate.ViewParticipants {
			m.filterActive = true
			m.inputCursorDirty = true
		}
	case "1", "2", "3", "4":
		m.gotoTab(int(keyMsg.String()[0] - '1'))
	}
	return nil
}

// handleFilterKey consumes text entry while the participant filter is open.
// Cursor movement and quitting are left for the browse handler so the list
// stays navigable mid-query.
func (m *Model) handleFilterKey(keyMsg tea.KeyMsg) bool {
	switch keyMsg.Type {
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.filterQuery += string(r)
		}
		m.participantCursor.Home()
		m.inputCursorDirty = true
		events.Filter.Append(m.filterQuery)
		return true
	case tea.KeySpace:
		m.filterQuery += " "
		m.inputCursorDirty = true
		events.Filter.Append(m.filterQuery)
		return true
	case tea.KeyBackspace:
		if m.filterQuery != "" {
			runes := []rune(m.filterQuery)
			m.filterQuery = string(runes[:len(runes)-1])
		}
		m.participantCursor.Clamp(len(m.visibleParticipants()))
		m.inputCursorDirty = true
		events.Filter.Backspace(m.filterQuery)
		return true
	case tea.KeyEsc:
		m.filterQuery = ""
		m.filterActive = false
		m.participantCursor.Clamp(len(m.visibleParticipants()))
		events.Filter.Cleared()
		return true
	case tea.KeyEnter:
		// Keep the narrowed list, close the prompt. The next enter drills
		// into the selection.
		m.filterActive = false
		return true
	default:
		return false
	}
}

// handleTransferKey owns the transfer view: tab cycles suggestions while an
// account field is focused, printable keys edit the focused field, and q
// still quits.
func (m *Model) handleTransferKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "q":
		events.UI.Quit()
		return tea.Quit
	case "esc":
		m.form.Reset()
	case "tab":
		if m.form.AccountFieldActive() {
			m.form.NextSuggestion(m.accounts)
			m.inputCursorDirty = true
		} else {
			m.flatNavigate(uistate.NextView(m.view))
		}
	case "shift+tab":
		if m.form.AccountFieldActive() {
			m.form.PrevSuggestion(m.accounts)
			m.inputCursorDirty = true
		} else {
			m.flatNavigate(uistate.PrevView(m.view))
		}
	case "right":
		m.flatNavigate(uistate.NextView(m.view))
	case "left":
		m.flatNavigate(uistate.PrevView(m.view))
	case "down":
		m.form.NextField()
		m.inputCursorDirty = true
	case "up":
		m.form.PrevField()
		m.inputCursorDirty = true
	case "enter":
		if m.form.AccountFieldActive() {
			m.form.AcceptSuggestion()
			m.inputCursorDirty = true
		} else {
			m.executeTransfer()
		}
	case "backspace":
		m.form.DeleteRune()
		m.inputCursorDirty = true
	default:
		m.insertFormText(keyMsg)
	}
	return nil
}

func (m *Model) insertFormText(keyMsg tea.KeyMsg) {
	switch keyMsg.Type {
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.form.InsertRune(r)
		}
		m.inputCursorDirty = true
	case tea.KeySpace:
		m.form.InsertRune(' ')
		m.inputCursorDirty = true
	}
}

// flatNavigate switches to another flat view and applies the load policy:
// entering Transfer refreshes the account cache for autocomplete, entering
// Future recomputes upcoming events.
func (m *Model) flatNavigate(to uistate.View) {
	prev := m.view
	if to == prev {
		return
	}
	m.view = to
	m.rebuildBreadcrumb()
	events.UI.Navigate(prev.Title(), to.Title())
	m.afterViewChange(prev)
}

func (m *Model) afterViewChange(prev uistate.View) {
	if m.view == uistate.ViewTransfer && prev != uistate.ViewTransfer {
		m.loadAccounts()
	}
	if m.view == uistate.ViewFuture {
		m.loadFutureEvents()
	}
}

func (m *Model) gotoTab(index int) {
	m.flatNavigate(uistate.GotoView(m.view, index))
}

// handleEnter drills into the selected participant. Navigation only happens
// once the detail actually loaded; on failure the current view stays put.
func (m *Model) handleEnter() {
	if m.view != uistate.ViewParticipants {
		return
	}
	visible := m.visibleParticipants()
	if len(visible) == 0 {
		return
	}
	m.participantCursor.Clamp(len(visible))
	p := visible[m.participantCursor.Pos]
	events.UI.Drill(p.ID)
	m.loadParticipantDetail(p.ID)
	if m.detail == nil || m.detail.Info.ID != p.ID {
		return
	}
	m.view = uistate.ViewParticipantDetail
	m.rebuildBreadcrumb()
}

// navigateBack pops one breadcrumb segment and reloads the view it lands
// on, so returning from a detail never shows stale rows.
func (m *Model) navigateBack() {
	if len(m.breadcrumb) < 2 {
		return
	}
	target := m.breadcrumb[len(m.breadcrumb)-2]
	events.UI.BreadcrumbBack(len(m.breadcrumb)-2, target.View.Title())
	m.view = target.View
	m.rebuildBreadcrumb()
	switch m.view {
	case uistate.ViewParticipants:
		m.loadParticipants()
	case uistate.ViewFuture:
		m.loadFutureEvents()
	}
}

func (m *Model) selectNext() {
	if m.view != uistate.ViewParticipants {
		return
	}
	m.participantCursor.Next(len(m.visibleParticipants()))
	events.UI.Cursor(m.view.Title(), m.participantCursor.Pos)
}

func (m *Model) selectPrev() {
	if m.view != uistate.ViewParticipants {
		return
	}
	m.participantCursor.Prev()
	events.UI.Cursor(m.view.Title(), m.participantCursor.Pos)
}
