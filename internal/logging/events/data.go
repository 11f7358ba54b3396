package events

import "github.com/substratefi/ledgerterm/internal/logging"

type DataTracer struct{}

var Data = DataTracer{}

func (DataTracer) Loaded(kind string, count int) {
	logging.Trace("data.loaded", map[string]interface{}{"kind": kind, "count": count})
}

func (DataTracer) LoadFailed(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("data.load-failed", map[string]interface{}{"kind": kind, "error": err.Error()})
}

func (DataTracer) Refresh(view string) {
	logging.Trace("data.refresh", map[string]interface{}{"view": view})
}
