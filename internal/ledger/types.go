package ledger

// Role identifies the business role a participant plays in the network.
type Role int32

const (
	RoleUnspecified Role = iota
	RoleAccessProvider
	RoleBankingPartner
	RoleEcosystemPartner
	RoleSupplier
	RoleEquipmentProvider
)

func (r Role) String() string {
	switch r {
	case RoleAccessProvider:
		return "Access Provider"
	case RoleBankingPartner:
		return "Banking Partner"
	case RoleEcosystemPartner:
		return "Ecosystem Partner"
	case RoleSupplier:
		return "Supplier"
	case RoleEquipmentProvider:
		return "Equipment Provider"
	default:
		return "Unknown"
	}
}

// AccountType classifies a ledger account.
type AccountType int32

const (
	AccountStandalone AccountType = iota
	AccountOperating
	AccountReceivables
	AccountPayables
	AccountEscrow
	AccountFees
	AccountUsage
)

func (t AccountType) String() string {
	switch t {
	case AccountStandalone:
		return "Standalone"
	case AccountOperating:
		return "Operating"
	case AccountReceivables:
		return "Receivables"
	case AccountPayables:
		return "Payables"
	case AccountEscrow:
		return "Escrow"
	case AccountFees:
		return "Fees"
	case AccountUsage:
		return "Usage"
	default:
		return "Unknown"
	}
}

// Contact holds a participant's contact details.
type Contact struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Website    string `json:"website"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// Participant is a read-only snapshot of a network participant.
type Participant struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Role      Role              `json:"role"`
	Services  []string          `json:"services"`
	CreatedAt int64             `json:"created_at"`
	Metadata  map[string]string `json:"metadata"`
	About     string            `json:"about"`
	Contact   Contact           `json:"contact"`
}

// Account is a read-only snapshot of a ledger account. Balance is in
// integer cents.
type Account struct {
	ID            string      `json:"id"`
	ParticipantID string      `json:"participant_id"`
	Type          AccountType `json:"account_type"`
	Balance       int64       `json:"balance"`
}

// Entry is one leg of a transaction: a signed amount in cents applied to an
// account. Debits are negative, credits positive.
type Entry struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
}

// Transaction is a completed ledger transaction.
type Transaction struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Entries   []Entry `json:"entries"`
	Reference string  `json:"reference"`
	Timestamp int64   `json:"timestamp"`
}

// ContractKind discriminates the contract variants the business service
// returns.
type ContractKind int

const (
	ContractUnknown ContractKind = iota
	ContractInvoice
	ContractSubscription
	ContractGeneric
	ContractConditionalPayment
	ContractRevenueShare
)

// GenericStatus values for generic contracts.
const (
	GenericStatusDraft int32 = iota
	GenericStatusActive
	GenericStatusCompleted
	GenericStatusCancelled
)

// Invoice is a one-shot payment obligation from buyer to supplier.
type Invoice struct {
	ID          string `json:"id"`
	SupplierID  string `json:"supplier_id"`
	BuyerID     string `json:"buyer_id"`
	AmountCents int64  `json:"amount_cents"`
	DueDate     int64  `json:"due_date"`
	Status      string `json:"status"`
}

// Subscription is a recurring monthly billing agreement.
type Subscription struct {
	ID              string `json:"id"`
	ProviderID      string `json:"provider_id"`
	SubscriberID    string `json:"subscriber_id"`
	MonthlyFeeCents int64  `json:"monthly_fee_cents"`
	NextBillingDate int64  `json:"next_billing_date"`
	Status          string `json:"status"`
}

// Generic is a free-form contract driven by server-side rules; participants
// are encoded in its metadata.
type Generic struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	ContractType    int32             `json:"contract_type"`
	Status          int32             `json:"status"`
	NextExecutionAt int64             `json:"next_execution_at"`
	Metadata        map[string]string `json:"metadata"`
}

// ConditionalPayment releases funds from payer to receiver when an external
// condition is met; it has no scheduled execution.
type ConditionalPayment struct {
	ID          string `json:"id"`
	PayerID     string `json:"payer_id"`
	ReceiverID  string `json:"receiver_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
}

// RevenueShareParty is one recipient of a revenue share split.
type RevenueShareParty struct {
	ParticipantID string `json:"participant_id"`
	ShareBps      int32  `json:"share_bps"`
}

// RevenueShare splits matching transactions between parties; it is
// event-driven rather than scheduled.
type RevenueShare struct {
	ID              string              `json:"id"`
	Parties         []RevenueShareParty `json:"parties"`
	TransactionType string              `json:"transaction_type"`
	Status          string              `json:"status"`
}

// Contract is the tagged union of contract variants. Exactly the field
// matching Kind is populated.
type Contract struct {
	Kind               ContractKind        `json:"-"`
	Invoice            *Invoice            `json:"invoice,omitempty"`
	Subscription       *Subscription       `json:"subscription,omitempty"`
	Generic            *Generic            `json:"generic,omitempty"`
	ConditionalPayment *ConditionalPayment `json:"conditional_payment,omitempty"`
	RevenueShare       *RevenueShare       `json:"revenue_share,omitempty"`
}

// normalize derives Kind from whichever variant the wire populated.
func (c *Contract) normalize() {
	switch {
	case c.Invoice != nil:
		c.Kind = ContractInvoice
	case c.Subscription != nil:
		c.Kind = ContractSubscription
	case c.Generic != nil:
		c.Kind = ContractGeneric
	case c.ConditionalPayment != nil:
		c.Kind = ContractConditionalPayment
	case c.RevenueShare != nil:
		c.Kind = ContractRevenueShare
	default:
		c.Kind = ContractUnknown
	}
}

// GenericTypeLabel renders the numeric contract type of a generic contract.
func GenericTypeLabel(contractType int32) string {
	switch contractType {
	case 0:
		return "Generic"
	case 1:
		return "Loan"
	case 2:
		return "Invoice"
	case 3:
		return "Subscription"
	case 4:
		return "Conditional Payment"
	case 5:
		return "Revenue Share"
	case 6:
		return "Supplier Registration"
	case 7:
		return "Ecosystem Partner Membership"
	default:
		return "Unknown"
	}
}
