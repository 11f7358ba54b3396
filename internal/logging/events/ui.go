package events

import "github.com/substratefi/ledgerterm/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Navigate(from, to string) {
	logging.Trace("ui.navigate", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Drill(participantID string) {
	logging.Trace("ui.drill", map[string]interface{}{"participant": participantID})
}

func (UITracer) BreadcrumbBack(index int, view string) {
	logging.Trace("ui.breadcrumb-back", map[string]interface{}{"index": index, "view": view})
}

func (UITracer) Cursor(view string, pos int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": pos})
}

func (UITracer) Quit() {
	logging.Trace("ui.quit", nil)
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
