package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRead is the read projection of a transaction used by API responses
// and by the reporting pipeline. Optional monetary fields are already resolved:
// Balance is zero when the record carries none.
type TransactionRead struct {
	ID                   string           `json:"id"`
	ProductID            string           `json:"productId"`
	Type                 string           `json:"type"`
	Amount               decimal.Decimal  `json:"amount"`
	Commission           decimal.Decimal  `json:"commission"`
	Description          string           `json:"description"`
	ClientID             string           `json:"clientId"`
	DestinationProductID string           `json:"destinationProductId,omitempty"`
	CardID               string           `json:"cardId,omitempty"`
	Currency             string           `json:"currency"`
	PaymentMethod        string           `json:"paymentMethod"`
	Operation            string           `json:"operation"`
	Status               string           `json:"status"`
	BootcoinID           string           `json:"bootcoinId,omitempty"`
	WalletID             string           `json:"walletId,omitempty"`
	BuyRate              *decimal.Decimal `json:"buyRate,omitempty"`
	SellRate             *decimal.Decimal `json:"sellRate,omitempty"`
	Balance              decimal.Decimal  `json:"balance"`
	CreatedDate          time.Time        `json:"createdDate"`
	UpdatedDate          time.Time        `json:"updatedDate"`
}

// TransactionInput is the caller's payload for create and full replacement.
// Nil pointers mean "not supplied".
type TransactionInput struct {
	ProductID            string
	Type                 string
	Amount               decimal.Decimal
	Commission           *decimal.Decimal
	Description          *string
	ClientID             string
	DestinationProductID string
	CardID               string
	Currency             string
	PaymentMethod        string
	Operation            string
	Status               *string
	BootcoinID           string
	WalletID             string
	BuyRate              *decimal.Decimal
	SellRate             *decimal.Decimal
	Balance              *decimal.Decimal
}

// ListFilter holds the optional filters and the 1-based page for listing.
type ListFilter struct {
	ProductID string
	CardID    string
	Page      int
	Size      int
}

