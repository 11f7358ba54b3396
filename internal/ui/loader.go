package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/substratefi/ledgerterm/internal/ledger"
	"github.com/substratefi/ledgerterm/internal/logging"
	"github.com/substratefi/ledgerterm/internal/logging/events"
	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

const (
	historyLimit       = 50
	contractQueryLimit = 100
	futureEventLimit   = 5
)

// contractInfo is the display form of one contract on the detail view.
type contractInfo struct {
	ID             string
	Type           string
	Description    string
	Counterparties []string
	NextExecution  int64
}

// participantDetail aggregates everything the detail view shows.
type participantDetail struct {
	Info         ledger.Participant
	Accounts     []ledger.Account
	TotalBalance int64
	Contracts    []contractInfo
}

// futureEvent is one upcoming scheduled execution.
type futureEvent struct {
	ContractID    string
	Type          string
	Description   string
	ExecutionTime int64
}

// genericPartyKeys are the metadata fields that name participants on a
// generic contract, in display order.
var genericPartyKeys = []string{
	"supplier_id", "buyer_id", "provider_id", "subscriber_id",
	"payer_id", "receiver_id", "orchestrator_id", "first_provider_id",
}

func (m *Model) initialLoad() {
	m.loadParticipants()
	m.loadAccounts()
	m.loadTransactions()
	m.loadFutureEvents()
}

// refreshAll reloads every cache the session depends on, including the open
// detail when one is on screen.
func (m *Model) refreshAll() {
	events.Data.Refresh(m.view.Title())
	m.loadParticipants()
	m.loadAccounts()
	m.loadTransactions()
	m.loadFutureEvents()
	if m.view == uistate.ViewParticipantDetail && m.detail != nil {
		m.loadParticipantDetail(m.detail.Info.ID)
	}
	m.rebuildBreadcrumb()
}

// Loads are best-effort: on failure the error is logged and the previous
// cache value stays in place, so a flaky server degrades to stale data
// instead of a blank screen.

func (m *Model) loadParticipants() {
	m.loading = true
	defer func() { m.loading = false }()

	list, err := m.client.ListParticipants(context.Background(), ledger.RoleUnspecified)
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("participants", err)
		return
	}
	m.participants = list
	m.participantCursor.Clamp(len(m.visibleParticipants()))
	events.Data.Loaded("participants", len(list))
}

// loadAccounts rebuilds the flat account cache used by transfer
// autocomplete. Per-participant failures skip that participant only.
func (m *Model) loadAccounts() {
	m.loading = true
	defer func() { m.loading = false }()

	accounts := make([]ledger.Account, 0, len(m.participants))
	failures := 0
	for _, p := range m.participants {
		got, err := m.client.GetParticipantAccounts(context.Background(), p.ID)
		if err != nil {
			logging.Error(err)
			events.Data.LoadFailed("accounts", err)
			failures++
			continue
		}
		accounts = append(accounts, got...)
	}
	// When every call failed nothing was actually reloaded; keep the stale
	// cache instead of wiping it.
	if failures > 0 && failures == len(m.participants) {
		return
	}
	m.accounts = accounts
	events.Data.Loaded("accounts", len(accounts))
}

func (m *Model) loadTransactions() {
	m.loading = true
	defer func() { m.loading = false }()

	txs, err := m.client.ListTransactions(context.Background(), historyLimit, "")
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("transactions", err)
		return
	}
	lines := make([]string, len(txs))
	for i, tx := range txs {
		lines[i] = formatTransaction(tx)
	}
	m.history = lines
	events.Data.Loaded("transactions", len(lines))
}

func (m *Model) loadFutureEvents() {
	m.loading = true
	defer func() { m.loading = false }()

	contracts, err := m.client.ListContracts(context.Background(), ledger.ContractQuery{
		Status: "active",
		Limit:  contractQueryLimit,
	})
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("contracts", err)
		return
	}
	m.future = upcomingEvents(contracts, time.Now().UnixMilli())
	events.Data.Loaded("future-events", len(m.future))
}

// loadParticipantDetail loads the drill-down snapshot for one participant.
// Info and accounts are required; contracts stay best-effort so a business
// service outage does not block the detail view.
func (m *Model) loadParticipantDetail(id string) {
	m.loading = true
	defer func() { m.loading = false }()

	info, err := m.client.GetParticipant(context.Background(), id)
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("participant", err)
		return
	}
	accounts, err := m.client.GetParticipantAccounts(context.Background(), id)
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("participant-accounts", err)
		return
	}
	detail := &participantDetail{Info: info, Accounts: accounts}
	for _, acc := range accounts {
		detail.TotalBalance += acc.Balance
	}
	contracts, err := m.client.ListContracts(context.Background(), ledger.ContractQuery{
		ParticipantID: id,
		Limit:         contractQueryLimit,
	})
	if err != nil {
		logging.Error(err)
		events.Data.LoadFailed("participant-contracts", err)
	} else {
		detail.Contracts = make([]contractInfo, len(contracts))
		for i, c := range contracts {
			detail.Contracts[i] = describeContract(c, id)
		}
	}
	m.detail = detail
	events.Data.Loaded("participant-detail", len(accounts))
}

func formatTransaction(tx ledger.Transaction) string {
	parts := make([]string, len(tx.Entries))
	for i, e := range tx.Entries {
		parts[i] = fmt.Sprintf("%s: %s", e.AccountID, ledger.FormatBalance(e.Amount))
	}
	id := tx.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("[%s] %s | %s | %s", id, tx.Type, strings.Join(parts, ", "), tx.Reference)
}

// upcomingEvents projects active contracts onto their next scheduled
// execution. Conditional payments and revenue shares are event-driven and
// never appear here. The result is sorted soonest-first and capped.
func upcomingEvents(contracts []ledger.Contract, now int64) []futureEvent {
	var out []futureEvent
	for _, c := range contracts {
		switch c.Kind {
		case ledger.ContractInvoice:
			inv := c.Invoice
			if inv.Status == "pending" && inv.DueDate > now {
				out = append(out, futureEvent{
					ContractID: inv.ID,
					Type:       "Invoice",
					Description: fmt.Sprintf("Invoice payment: %s from %s to %s",
						ledger.FormatBalance(inv.AmountCents), inv.SupplierID, inv.BuyerID),
					ExecutionTime: inv.DueDate,
				})
			}
		case ledger.ContractSubscription:
			sub := c.Subscription
			if sub.Status == "active" && sub.NextBillingDate > now {
				out = append(out, futureEvent{
					ContractID: sub.ID,
					Type:       "Subscription",
					Description: fmt.Sprintf("Subscription billing: %s from %s to %s",
						ledger.FormatBalance(sub.MonthlyFeeCents), sub.ProviderID, sub.SubscriberID),
					ExecutionTime: sub.NextBillingDate,
				})
			}
		case ledger.ContractGeneric:
			g := c.Generic
			if g.Status == ledger.GenericStatusActive && g.NextExecutionAt > now {
				out = append(out, futureEvent{
					ContractID:    g.ID,
					Type:          genericTypeName(g),
					Description:   genericDescription(g),
					ExecutionTime: g.NextExecutionAt,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExecutionTime < out[j].ExecutionTime })
	if len(out) > futureEventLimit {
		out = out[:futureEventLimit]
	}
	return out
}

// describeContract flattens a contract variant into display fields from the
// viewing participant's perspective: the viewer never appears among its own
// counterparties.
func describeContract(c ledger.Contract, viewerID string) contractInfo {
	switch c.Kind {
	case ledger.ContractInvoice:
		inv := c.Invoice
		return contractInfo{
			ID:   inv.ID,
			Type: "Invoice",
			Description: fmt.Sprintf("Invoice: %s from %s to %s",
				ledger.FormatBalance(inv.AmountCents), inv.SupplierID, inv.BuyerID),
			Counterparties: counterparties(viewerID, inv.SupplierID, inv.BuyerID),
			NextExecution:  inv.DueDate,
		}
	case ledger.ContractSubscription:
		sub := c.Subscription
		return contractInfo{
			ID:   sub.ID,
			Type: "Subscription",
			Description: fmt.Sprintf("Subscription: %s monthly from %s to %s",
				ledger.FormatBalance(sub.MonthlyFeeCents), sub.ProviderID, sub.SubscriberID),
			Counterparties: counterparties(viewerID, sub.ProviderID, sub.SubscriberID),
			NextExecution:  sub.NextBillingDate,
		}
	case ledger.ContractGeneric:
		g := c.Generic
		parties := make([]string, 0, len(genericPartyKeys))
		for _, key := range genericPartyKeys {
			parties = append(parties, g.Metadata[key])
		}
		return contractInfo{
			ID:             g.ID,
			Type:           genericTypeName(g),
			Description:    genericDescription(g),
			Counterparties: counterparties(viewerID, parties...),
			NextExecution:  g.NextExecutionAt,
		}
	case ledger.ContractConditionalPayment:
		cp := c.ConditionalPayment
		return contractInfo{
			ID:   cp.ID,
			Type: "Conditional Payment",
			Description: fmt.Sprintf("Conditional Payment: %s from %s to %s",
				ledger.FormatBalance(cp.AmountCents), cp.PayerID, cp.ReceiverID),
			Counterparties: counterparties(viewerID, cp.PayerID, cp.ReceiverID),
		}
	case ledger.ContractRevenueShare:
		rs := c.RevenueShare
		parties := make([]string, len(rs.Parties))
		for i, p := range rs.Parties {
			parties[i] = p.ParticipantID
		}
		return contractInfo{
			ID:   rs.ID,
			Type: "Revenue Share",
			Description: fmt.Sprintf("Revenue Share: %d parties for %s",
				len(rs.Parties), rs.TransactionType),
			Counterparties: counterparties(viewerID, parties...),
		}
	default:
		return contractInfo{ID: "unknown", Type: "Unknown", Description: "Unknown contract type"}
	}
}

func genericTypeName(g *ledger.Generic) string {
	return fmt.Sprintf("Generic (%s)", ledger.GenericTypeLabel(g.ContractType))
}

func genericDescription(g *ledger.Generic) string {
	if g.Description == "" {
		return g.Name
	}
	return fmt.Sprintf("%s: %s", g.Name, g.Description)
}

func counterparties(viewerID string, ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || id == viewerID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
