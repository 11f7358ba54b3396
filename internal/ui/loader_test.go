package ui

import (
	"errors"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/substratefi/ledgerterm/internal/ledger"
	uistate "github.com/substratefi/ledgerterm/internal/ui/state"
)

func TestUpcomingEventsSortedAndCapped(t *testing.T) {
	contracts := []ledger.Contract{
		{Kind: ledger.ContractInvoice, Invoice: &ledger.Invoice{
			ID: "inv-late", SupplierID: "a", BuyerID: "b", AmountCents: 100, DueDate: 700, Status: "pending"}},
		{Kind: ledger.ContractInvoice, Invoice: &ledger.Invoice{
			ID: "inv-paid", SupplierID: "a", BuyerID: "b", AmountCents: 100, DueDate: 300, Status: "paid"}},
		{Kind: ledger.ContractSubscription, Subscription: &ledger.Subscription{
			ID: "sub-1", ProviderID: "a", SubscriberID: "b", MonthlyFeeCents: 50, NextBillingDate: 200, Status: "active"}},
		{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
			ID: "gen-1", Name: "fees", Status: ledger.GenericStatusActive, NextExecutionAt: 500}},
		{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
			ID: "gen-past", Name: "fees", Status: ledger.GenericStatusActive, NextExecutionAt: 50}},
		{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
			ID: "gen-2", Name: "fees", Status: ledger.GenericStatusActive, NextExecutionAt: 400}},
		{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
			ID: "gen-3", Name: "fees", Status: ledger.GenericStatusActive, NextExecutionAt: 600}},
		{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
			ID: "gen-4", Name: "fees", Status: ledger.GenericStatusActive, NextExecutionAt: 650}},
		{Kind: ledger.ContractConditionalPayment, ConditionalPayment: &ledger.ConditionalPayment{
			ID: "cp-1", PayerID: "a", ReceiverID: "b", AmountCents: 10, Status: "active"}},
	}

	events := upcomingEvents(contracts, 100)
	if len(events) != 5 {
		t.Fatalf("expected cap at 5 events, got %d", len(events))
	}
	var ids []string
	for _, e := range events {
		ids = append(ids, e.ContractID)
	}
	want := []string{"sub-1", "gen-2", "gen-1", "gen-3", "gen-4"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected ascending order %v, got %v", want, ids)
	}
	for i := 1; i < len(events); i++ {
		if events[i-1].ExecutionTime > events[i].ExecutionTime {
			t.Fatalf("events out of order at %d: %+v", i, events)
		}
	}
}

func TestDescribeContractExcludesViewer(t *testing.T) {
	inv := ledger.Contract{Kind: ledger.ContractInvoice, Invoice: &ledger.Invoice{
		ID: "inv-1", SupplierID: "a", BuyerID: "b", AmountCents: 15000, DueDate: 10, Status: "pending"}}

	info := describeContract(inv, "a")
	if info.Type != "Invoice" {
		t.Fatalf("unexpected type %q", info.Type)
	}
	if info.Description != "Invoice: 150.00 from a to b" {
		t.Fatalf("unexpected description %q", info.Description)
	}
	if !reflect.DeepEqual(info.Counterparties, []string{"b"}) {
		t.Fatalf("expected only the buyer as counterparty, got %v", info.Counterparties)
	}

	info = describeContract(inv, "b")
	if !reflect.DeepEqual(info.Counterparties, []string{"a"}) {
		t.Fatalf("expected only the supplier as counterparty, got %v", info.Counterparties)
	}
}

func TestDescribeGenericReadsMetadataParties(t *testing.T) {
	gen := ledger.Contract{Kind: ledger.ContractGeneric, Generic: &ledger.Generic{
		ID: "gen-1", Name: "roaming", Description: "monthly roaming settlement",
		ContractType: 5, Status: ledger.GenericStatusActive, NextExecutionAt: 10,
		Metadata: map[string]string{
			"provider_id":     "p1",
			"subscriber_id":   "s1",
			"orchestrator_id": "a",
			"payer_id":        "p1",
			"region":          "nordics",
		}}}

	info := describeContract(gen, "a")
	if info.Type != "Generic (Revenue Share)" {
		t.Fatalf("expected generic type label, got %q", info.Type)
	}
	if !reflect.DeepEqual(info.Counterparties, []string{"p1", "s1"}) {
		t.Fatalf("expected deduplicated parties without viewer, got %v", info.Counterparties)
	}
	if info.Description != "roaming: monthly roaming settlement" {
		t.Fatalf("unexpected description %q", info.Description)
	}
}

func TestDescribeContractDescriptionFormats(t *testing.T) {
	sub := ledger.Contract{Kind: ledger.ContractSubscription, Subscription: &ledger.Subscription{
		ID: "sub-1", ProviderID: "p", SubscriberID: "s", MonthlyFeeCents: 2500, NextBillingDate: 10, Status: "active"}}
	if got := describeContract(sub, "x").Description; got != "Subscription: 25.00 monthly from p to s" {
		t.Fatalf("unexpected subscription description %q", got)
	}

	cp := ledger.Contract{Kind: ledger.ContractConditionalPayment, ConditionalPayment: &ledger.ConditionalPayment{
		ID: "cp-1", PayerID: "p", ReceiverID: "r", AmountCents: 100, Status: "active"}}
	if got := describeContract(cp, "x").Description; got != "Conditional Payment: 1.00 from p to r" {
		t.Fatalf("unexpected conditional payment description %q", got)
	}

	rs := ledger.Contract{Kind: ledger.ContractRevenueShare, RevenueShare: &ledger.RevenueShare{
		ID: "rs-1", Parties: []ledger.RevenueShareParty{{ParticipantID: "p1"}, {ParticipantID: "p2"}},
		TransactionType: "data_usage", Status: "active"}}
	if got := describeContract(rs, "x").Description; got != "Revenue Share: 2 parties for data_usage" {
		t.Fatalf("unexpected revenue share description %q", got)
	}

	unknown := describeContract(ledger.Contract{}, "x")
	if unknown.ID != "unknown" || unknown.Type != "Unknown" || unknown.Description != "Unknown contract type" {
		t.Fatalf("unexpected fallback contract info %+v", unknown)
	}
}

func TestUpcomingEventDescriptionsNameBothParties(t *testing.T) {
	contracts := []ledger.Contract{
		{Kind: ledger.ContractInvoice, Invoice: &ledger.Invoice{
			ID: "inv-1", SupplierID: "sup", BuyerID: "buy", AmountCents: 15000, DueDate: 500, Status: "pending"}},
		{Kind: ledger.ContractSubscription, Subscription: &ledger.Subscription{
			ID: "sub-1", ProviderID: "prov", SubscriberID: "subr", MonthlyFeeCents: 2500, NextBillingDate: 600, Status: "active"}},
	}

	got := upcomingEvents(contracts, 100)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Description != "Invoice payment: 150.00 from sup to buy" {
		t.Fatalf("unexpected invoice event description %q", got[0].Description)
	}
	if got[1].Description != "Subscription billing: 25.00 from prov to subr" {
		t.Fatalf("unexpected subscription event description %q", got[1].Description)
	}
}

func TestFormatTransactionLine(t *testing.T) {
	tx := ledger.Transaction{
		ID:   "abcdef123456",
		Type: "transfer",
		Entries: []ledger.Entry{
			{AccountID: "a:op", Amount: -500},
			{AccountID: "b:op", Amount: 500},
		},
		Reference: "seed",
	}
	got := formatTransaction(tx)
	want := "[abcdef12] transfer | a:op: -5.00, b:op: 5.00 | seed"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFailedReloadKeepsPreviousList(t *testing.T) {
	fake := newFakeService()
	m := NewModel(fake, 0, 0, true, false)
	m.Init()
	if len(m.participants) != 2 {
		t.Fatalf("expected initial load, got %d participants", len(m.participants))
	}

	fake.listErr = errors.New("unavailable")
	m.loadParticipants()
	if len(m.participants) != 2 {
		t.Fatalf("expected stale list kept on failure, got %d", len(m.participants))
	}
}

func TestAccountLoadSkipsFailingParticipant(t *testing.T) {
	fake := newFakeService()
	fake.accountsErr = map[string]error{"b": errors.New("unavailable")}
	m := NewModel(fake, 0, 0, true, false)
	m.Init()

	if len(m.accounts) != 1 || m.accounts[0].ID != "a:op" {
		t.Fatalf("expected only reachable accounts cached, got %+v", m.accounts)
	}
}

func TestAccountLoadKeepsCacheWhenAllParticipantsFail(t *testing.T) {
	fake := newFakeService()
	m := NewModel(fake, 0, 0, true, false)
	m.Init()
	if len(m.accounts) != 2 {
		t.Fatalf("expected seeded accounts, got %d", len(m.accounts))
	}

	fake.accountsErr = map[string]error{
		"a": errors.New("unavailable"),
		"b": errors.New("unavailable"),
	}
	m.loadAccounts()
	if len(m.accounts) != 2 {
		t.Fatalf("expected stale accounts kept when every load fails, got %d", len(m.accounts))
	}
}

func TestInitialLoadSurvivesPartialFailure(t *testing.T) {
	fake := newFakeService()
	fake.listErr = errors.New("unavailable")
	m := NewModel(fake, 0, 0, true, false)
	m.Init()

	if len(m.participants) != 0 {
		t.Fatalf("expected no participants, got %d", len(m.participants))
	}
	if len(m.history) != 1 {
		t.Fatalf("expected transaction history to load independently, got %d", len(m.history))
	}
	if len(m.future) != 1 {
		t.Fatalf("expected future events to load independently, got %d", len(m.future))
	}
}

func TestRefreshReloadsOpenDetail(t *testing.T) {
	h, fake := newTestHarness(t)
	h.SendKey('j')
	h.SendSpecial(tea.KeyEnter)
	m := h.Model()
	if m.view != uistate.ViewParticipantDetail || m.detail.Info.ID != "b" {
		t.Fatalf("expected detail for b, got %+v", m.detail)
	}

	fake.accounts["b"] = append(fake.accounts["b"], ledger.Account{
		ID: "b:recv", ParticipantID: "b", Type: ledger.AccountReceivables, Balance: 700,
	})
	h.SendKey('r')
	m = h.Model()
	if len(m.detail.Accounts) != 2 {
		t.Fatalf("expected refreshed detail accounts, got %d", len(m.detail.Accounts))
	}
	if m.detail.TotalBalance != 3200 {
		t.Fatalf("expected recomputed total 3200, got %d", m.detail.TotalBalance)
	}
}
