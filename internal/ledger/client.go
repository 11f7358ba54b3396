// Package ledger is the client-side boundary to the remote ledger service.
// It owns the wire types, the gRPC plumbing, and the display helpers; all
// ledger invariants (double-entry bookkeeping, contract execution) live on
// the server.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	methodListParticipants       = "/ledger.v1.ParticipantService/ListParticipants"
	methodGetParticipant         = "/ledger.v1.ParticipantService/GetParticipant"
	methodGetParticipantAccounts = "/ledger.v1.ParticipantService/GetParticipantAccounts"
	methodListTransactions       = "/ledger.v1.LedgerService/ListTransactions"
	methodTransfer               = "/ledger.v1.LedgerService/Transfer"
	methodListContracts          = "/ledger.v1.BusinessService/ListContracts"
)

// ContractQuery narrows a ListContracts call. Zero values mean "no filter";
// Limit <= 0 falls back to the server default.
type ContractQuery struct {
	Type          string
	Status        string
	ParticipantID string
	Limit         int32
}

// Service is the collaborator surface the UI engine consumes. Every call may
// fail; callers decide whether failures are fatal, inline, or best-effort.
type Service interface {
	ListParticipants(ctx context.Context, role Role) ([]Participant, error)
	GetParticipant(ctx context.Context, id string) (Participant, error)
	GetParticipantAccounts(ctx context.Context, participantID string) ([]Account, error)
	ListTransactions(ctx context.Context, limit int32, accountID string) ([]Transaction, error)
	Transfer(ctx context.Context, entries []Entry, reference string) (Transaction, error)
	ListContracts(ctx context.Context, q ContractQuery) ([]Contract, error)
}

// Client is the gRPC-backed Service implementation.
type Client struct {
	conn *grpc.ClientConn
}

var _ Service = (*Client)(nil)

// Connect dials the ledger server and blocks until the connection is ready
// or ctx expires. Transport security is handled by the deployment (the
// server sits behind a local socket or mesh), so the dial uses insecure
// transport credentials.
func Connect(ctx context.Context, addr string) (*Client, error) {
	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("dial ledger server %s: %w", addr, err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

type listParticipantsRequest struct {
	Role Role `json:"role"`
}

type listParticipantsResponse struct {
	Participants []Participant `json:"participants"`
}

func (c *Client) ListParticipants(ctx context.Context, role Role) ([]Participant, error) {
	var resp listParticipantsResponse
	if err := c.invoke(ctx, methodListParticipants, listParticipantsRequest{Role: role}, &resp); err != nil {
		return nil, err
	}
	return resp.Participants, nil
}

type getParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

func (c *Client) GetParticipant(ctx context.Context, id string) (Participant, error) {
	var resp Participant
	if err := c.invoke(ctx, methodGetParticipant, getParticipantRequest{ParticipantID: id}, &resp); err != nil {
		return Participant{}, err
	}
	return resp, nil
}

type getParticipantAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

func (c *Client) GetParticipantAccounts(ctx context.Context, participantID string) ([]Account, error) {
	var resp getParticipantAccountsResponse
	if err := c.invoke(ctx, methodGetParticipantAccounts, getParticipantRequest{ParticipantID: participantID}, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

type listTransactionsRequest struct {
	Limit     int32  `json:"limit"`
	AccountID string `json:"account_id"`
}

type listTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

func (c *Client) ListTransactions(ctx context.Context, limit int32, accountID string) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	var resp listTransactionsResponse
	req := listTransactionsRequest{Limit: limit, AccountID: accountID}
	if err := c.invoke(ctx, methodListTransactions, req, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

type transferRequest struct {
	Entries   []Entry `json:"entries"`
	Reference string  `json:"reference"`
}

func (c *Client) Transfer(ctx context.Context, entries []Entry, reference string) (Transaction, error) {
	// Mutating calls carry a request id so retries and server logs can be
	// correlated.
	ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", uuid.NewString())
	var resp Transaction
	req := transferRequest{Entries: entries, Reference: reference}
	if err := c.invoke(ctx, methodTransfer, req, &resp); err != nil {
		return Transaction{}, err
	}
	return resp, nil
}

type listContractsRequest struct {
	Type          string `json:"type,omitempty"`
	Status        string `json:"status,omitempty"`
	ParticipantID string `json:"participant_id,omitempty"`
	Limit         int32  `json:"limit,omitempty"`
}

type listContractsResponse struct {
	Contracts []Contract `json:"contracts"`
}

func (c *Client) ListContracts(ctx context.Context, q ContractQuery) ([]Contract, error) {
	var resp listContractsResponse
	req := listContractsRequest{Type: q.Type, Status: q.Status, ParticipantID: q.ParticipantID, Limit: q.Limit}
	if err := c.invoke(ctx, methodListContracts, req, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Contracts {
		resp.Contracts[i].normalize()
	}
	return resp.Contracts, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	if err := c.conn.Invoke(ctx, method, req, resp); err != nil {
		if st, ok := status.FromError(err); ok {
			return fmt.Errorf("%s: %s", method, st.Message())
		}
		return err
	}
	return nil
}
