// Package transaction holds the canonical transaction record and the rules that
// govern its creation and replacement.
package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction. The accepted set is configured at startup.
type Type string

// Default transaction types.
const (
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
	TypeTransfer   Type = "TRANSFER"
	TypePayment    Type = "PAYMENT"
)

// DefaultTypes is the type set used when none is configured.
var DefaultTypes = []Type{TypeDeposit, TypeWithdrawal, TypeTransfer, TypePayment}

// Status is the lifecycle state of a transaction.
type Status string

// Transaction statuses.
const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusPending, StatusCompleted, StatusFailed, StatusCancelled}

// DefaultStatus is assigned on create when the caller does not pick one.
const DefaultStatus = StatusCompleted

// DefaultDescription is used when a transaction arrives without a description.
const DefaultDescription = "No description"

// Transaction is a single financial movement on a product.
//
// ID is assigned by the store on first save and never changes afterwards.
// CreatedDate is set once; UpdatedDate moves forward on every replacement.
type Transaction struct {
	ID                   string
	ProductID            string
	Type                 Type
	Amount               decimal.Decimal
	Commission           decimal.Decimal
	Description          string
	ClientID             string
	DestinationProductID string
	CardID               string
	Currency             string
	PaymentMethod        string
	Operation            string
	Status               Status
	BootcoinID           string
	WalletID             string
	BuyRate              decimal.NullDecimal
	SellRate             decimal.NullDecimal
	Balance              decimal.NullDecimal
	CreatedDate          time.Time
	UpdatedDate          time.Time
}

// Draft carries caller-supplied fields for a create or a full replacement.
// Pointer fields distinguish "absent" from a zero value.
type Draft struct {
	ProductID            string
	Type                 Type
	Amount               decimal.Decimal
	Commission           *decimal.Decimal
	Description          *string
	ClientID             string
	DestinationProductID string
	CardID               string
	Currency             string
	PaymentMethod        string
	Operation            string
	Status               *Status
	BootcoinID           string
	WalletID             string
	BuyRate              *decimal.Decimal
	SellRate             *decimal.Decimal
	Balance              *decimal.Decimal
}

// Defaults controls the values substituted for absent optional fields.
type Defaults struct {
	Description string
	Status      Status
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{Description: DefaultDescription, Status: DefaultStatus}
}

// Timestamp normalizes t to the resolution every store can hold.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// New builds a transaction ready for its first save. The ID stays empty until
// the store assigns one.
func New(d Draft, defaults Defaults, now time.Time) *Transaction {
	now = Timestamp(now)
	tx := fromDraft(d, defaults)
	if d.Status == nil {
		tx.Status = defaults.Status
	}
	tx.CreatedDate = now
	tx.UpdatedDate = now
	return tx
}

// Replace builds the replacement for existing out of d. The identifier and the
// creation date come from existing, the status falls back to the stored one
// when d has none, and UpdatedDate is guaranteed to be strictly later than the
// stored value.
func Replace(existing *Transaction, d Draft, defaults Defaults, now time.Time) *Transaction {
	tx := fromDraft(d, defaults)
	tx.ID = existing.ID
	tx.CreatedDate = existing.CreatedDate
	if d.Status == nil {
		tx.Status = existing.Status
	}
	now = Timestamp(now)
	if prev := Timestamp(existing.UpdatedDate); !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	tx.UpdatedDate = now
	return tx
}

func fromDraft(d Draft, defaults Defaults) *Transaction {
	tx := &Transaction{
		ProductID:            d.ProductID,
		Type:                 d.Type,
		Amount:               d.Amount,
		Commission:           decimal.Zero,
		Description:          defaults.Description,
		ClientID:             d.ClientID,
		DestinationProductID: d.DestinationProductID,
		CardID:               d.CardID,
		Currency:             d.Currency,
		PaymentMethod:        d.PaymentMethod,
		Operation:            d.Operation,
		BootcoinID:           d.BootcoinID,
		WalletID:             d.WalletID,
		BuyRate:              nullable(d.BuyRate),
		SellRate:             nullable(d.SellRate),
		Balance:              nullable(d.Balance),
	}
	if d.Commission != nil {
		tx.Commission = *d.Commission
	}
	if d.Description != nil {
		tx.Description = *d.Description
	}
	if d.Status != nil {
		tx.Status = *d.Status
	}
	return tx
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
