package transaction

import (
	"github.com/amirasaad/txrecords/pkg/dto"
	"github.com/shopspring/decimal"
)

//revive:disable

// TransactionRequest is the request body for creating or replacing a transaction.
// Omitted optional fields take their defaults: commission 0, description
// "No description", status COMPLETED (or the stored status on update).
type TransactionRequest struct {
	ProductID            string           `json:"productId" validate:"required,max=64"`
	Type                 string           `json:"type" validate:"required,txtype"`
	Amount               *decimal.Decimal `json:"amount" validate:"required"`
	Commission           *decimal.Decimal `json:"commission"`
	Description          *string          `json:"description" validate:"omitempty,max=255"`
	ClientID             string           `json:"clientId" validate:"required,max=64"`
	DestinationProductID string           `json:"destinationProductId" validate:"omitempty,max=64"`
	CardID               string           `json:"cardId" validate:"omitempty,max=64"`
	Currency             string           `json:"currency" validate:"omitempty,len=3,uppercase,alpha"`
	PaymentMethod        string           `json:"paymentMethod" validate:"omitempty,max=32"`
	Operation            string           `json:"operation" validate:"omitempty,max=32"`
	Status               *string          `json:"status" validate:"omitempty,txstatus"`
	BootcoinID           string           `json:"bootcoinId" validate:"omitempty,max=64"`
	WalletID             string           `json:"walletId" validate:"omitempty,max=64"`
	BuyRate              *decimal.Decimal `json:"buyRate"`
	SellRate             *decimal.Decimal `json:"sellRate"`
	Balance              *decimal.Decimal `json:"balance"`
}

// ToInput converts the request body into the service input.
func (r *TransactionRequest) ToInput() dto.TransactionInput {
	in := dto.TransactionInput{
		ProductID:            r.ProductID,
		Type:                 r.Type,
		Commission:           r.Commission,
		Description:          r.Description,
		ClientID:             r.ClientID,
		DestinationProductID: r.DestinationProductID,
		CardID:               r.CardID,
		Currency:             r.Currency,
		PaymentMethod:        r.PaymentMethod,
		Operation:            r.Operation,
		Status:               r.Status,
		BootcoinID:           r.BootcoinID,
		WalletID:             r.WalletID,
		BuyRate:              r.BuyRate,
		SellRate:             r.SellRate,
		Balance:              r.Balance,
	}
	if r.Amount != nil {
		in.Amount = *r.Amount
	}
	return in
}
