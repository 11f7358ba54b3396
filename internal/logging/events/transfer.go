package events

import "github.com/substratefi/ledgerterm/internal/logging"

type TransferTracer struct{}

var Transfer = TransferTracer{}

func (TransferTracer) Submit(from, to, amount string) {
	logging.Trace("transfer.submit", map[string]interface{}{"from": from, "to": to, "amount": amount})
}

func (TransferTracer) Rejected(reason string) {
	logging.Trace("transfer.rejected", map[string]interface{}{"reason": reason})
}

func (TransferTracer) Success(txID string) {
	logging.Trace("transfer.success", map[string]interface{}{"tx": txID})
}

func (TransferTracer) Failure(err error) {
	if err == nil {
		return
	}
	logging.Trace("transfer.failure", map[string]interface{}{"error": err.Error()})
}
