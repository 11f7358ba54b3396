package ui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/substratefi/ledgerterm/internal/ledger"
)

type fakeService struct {
	participants []ledger.Participant
	accounts     map[string][]ledger.Account
	transactions []ledger.Transaction
	contracts    []ledger.Contract

	listErr     error
	accountsErr map[string]error
	transferErr error
	nextTxID    string
	transferred [][]ledger.Entry
}

var _ ledger.Service = (*fakeService)(nil)

func (f *fakeService) ListParticipants(ctx context.Context, role ledger.Role) ([]ledger.Participant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.participants, nil
}

func (f *fakeService) GetParticipant(ctx context.Context, id string) (ledger.Participant, error) {
	for _, p := range f.participants {
		if p.ID == id {
			return p, nil
		}
	}
	return ledger.Participant{}, fmt.Errorf("participant %s not found", id)
}

func (f *fakeService) GetParticipantAccounts(ctx context.Context, participantID string) ([]ledger.Account, error) {
	if err := f.accountsErr[participantID]; err != nil {
		return nil, err
	}
	return f.accounts[participantID], nil
}

func (f *fakeService) ListTransactions(ctx context.Context, limit int32, accountID string) ([]ledger.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeService) Transfer(ctx context.Context, entries []ledger.Entry, reference string) (ledger.Transaction, error) {
	if f.transferErr != nil {
		return ledger.Transaction{}, f.transferErr
	}
	f.transferred = append(f.transferred, entries)
	return ledger.Transaction{
		ID:        f.nextTxID,
		Type:      "transfer",
		Entries:   entries,
		Reference: reference,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

func (f *fakeService) ListContracts(ctx context.Context, q ledger.ContractQuery) ([]ledger.Contract, error) {
	return f.contracts, nil
}

func newFakeService() *fakeService {
	soon := time.Now().Add(24 * time.Hour).UnixMilli()
	return &fakeService{
		participants: []ledger.Participant{
			{ID: "a", Name: "Acme Fiber", Role: ledger.RoleSupplier},
			{ID: "b", Name: "Borealis", Role: ledger.RoleBankingPartner},
		},
		accounts: map[string][]ledger.Account{
			"a": {{ID: "a:op", ParticipantID: "a", Type: ledger.AccountOperating, Balance: 10000}},
			"b": {{ID: "b:op", ParticipantID: "b", Type: ledger.AccountOperating, Balance: 2500}},
		},
		transactions: []ledger.Transaction{
			{
				ID:   "abcdef123456",
				Type: "transfer",
				Entries: []ledger.Entry{
					{AccountID: "a:op", Amount: -500},
					{AccountID: "b:op", Amount: 500},
				},
				Reference: "seed",
			},
		},
		contracts: []ledger.Contract{
			{
				Kind: ledger.ContractInvoice,
				Invoice: &ledger.Invoice{
					ID: "inv-1", SupplierID: "a", BuyerID: "b",
					AmountCents: 15000, DueDate: soon, Status: "pending",
				},
			},
		},
		nextTxID: "T1",
	}
}

func newTestHarness(t *testing.T) (*Harness, *fakeService) {
	t.Helper()
	fake := newFakeService()
	return NewHarness(NewModel(fake, 0, 0, true, false)), fake
}
