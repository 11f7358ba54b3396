package events

import "github.com/substratefi/ledgerterm/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Connected(addr string) {
	logging.Trace("app.connected", map[string]interface{}{"server": addr})
}

func (AppTracer) ConnectFailed(addr string, err error) {
	if err == nil {
		return
	}
	logging.Trace("app.connect-failed", map[string]interface{}{"server": addr, "error": err.Error()})
}
