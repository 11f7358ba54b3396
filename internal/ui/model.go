package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/substratefi/ledgerterm/internal/ledger"
	"github.com/substratefi/ledgerterm/internal/theme"
	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the ledger terminal. All state
// mutation happens inside Update; View only reads. Data loads run inline so
// a key event's full effect, reloads included, is visible on the very next
// render.
type Model struct {
	client ledger.Service

	view       uistate.View
	breadcrumb []uistate.Segment

	participants      []ledger.Participant
	participantCursor uistate.Cursor
	filterActive      bool
	filterQuery       string

	detail   *participantDetail
	accounts []ledger.Account
	form     uistate.TransferForm
	history  []string
	future   []futureEvent

	loading bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	inputCursor      cursor.Model
	inputCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the participants view selected and an
// empty transfer form.
func NewModel(client ledger.Service, width, height int, showFooter bool, verbose bool) *Model {
	m := &Model{
		client:     client,
		view:       uistate.ViewParticipants,
		form:       uistate.NewTransferForm(),
		showFooter: showFooter,
		verbose:    verbose,
	}
	m.breadcrumb = uistate.Breadcrumb(m.view, nil)
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	c.SetChar(" ")
	m.inputCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface. The initial data load happens
// here so the first frame already shows server data.
func (m *Model) Init() tea.Cmd {
	m.initialLoad()
	return m.inputCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateInputCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.inputCursorDirty {
		m.inputCursorDirty = false
		m.inputCursor.Blink = false
		if cmd := m.inputCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) updateInputCursorModel(msg tea.Msg) tea.Cmd {
	updated, cmd := m.inputCursor.Update(msg)
	m.inputCursor = updated
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	return nil
}

// visibleParticipants applies the active filter; an empty query passes the
// full list through.
func (m *Model) visibleParticipants() []ledger.Participant {
	return uistate.FilterParticipants(m.participants, m.filterQuery)
}

// rebuildBreadcrumb rederives the trail from the current view and loaded
// detail. Called after every view change instead of mutating the trail in
// place.
func (m *Model) rebuildBreadcrumb() {
	m.breadcrumb = uistate.Breadcrumb(m.view, m.detailRef())
}

func (m *Model) detailRef() *uistate.DetailRef {
	if m.view != uistate.ViewParticipantDetail || m.detail == nil {
		return nil
	}
	return &uistate.DetailRef{ID: m.detail.Info.ID, Name: m.detail.Info.Name}
}
