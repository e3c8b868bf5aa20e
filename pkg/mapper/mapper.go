// Package mapper translates transactions between caller input, the domain
// record and the read projection. Every function is pure.
package mapper

import (
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/dto"
	"github.com/shopspring/decimal"
)

// MapInputToDraft maps caller input onto a domain draft. Absent optional fields
// stay nil so the domain can apply its defaults.
func MapInputToDraft(in dto.TransactionInput) transaction.Draft {
	d := transaction.Draft{
		ProductID:            in.ProductID,
		Type:                 transaction.Type(in.Type),
		Amount:               in.Amount,
		Commission:           in.Commission,
		Description:          in.Description,
		ClientID:             in.ClientID,
		DestinationProductID: in.DestinationProductID,
		CardID:               in.CardID,
		Currency:             in.Currency,
		PaymentMethod:        in.PaymentMethod,
		Operation:            in.Operation,
		BootcoinID:           in.BootcoinID,
		WalletID:             in.WalletID,
		BuyRate:              in.BuyRate,
		SellRate:             in.SellRate,
		Balance:              in.Balance,
	}
	if in.Status != nil {
		s := transaction.Status(*in.Status)
		d.Status = &s
	}
	return d
}

// MapTransactionToRead maps a domain transaction to its read projection.
// A missing balance is projected as zero.
func MapTransactionToRead(tx *transaction.Transaction) *dto.TransactionRead {
	if tx == nil {
		return nil
	}
	balance := decimal.Zero
	if tx.Balance.Valid {
		balance = tx.Balance.Decimal
	}
	return &dto.TransactionRead{
		ID:                   tx.ID,
		ProductID:            tx.ProductID,
		Type:                 string(tx.Type),
		Amount:               tx.Amount,
		Commission:           tx.Commission,
		Description:          tx.Description,
		ClientID:             tx.ClientID,
		DestinationProductID: tx.DestinationProductID,
		CardID:               tx.CardID,
		Currency:             tx.Currency,
		PaymentMethod:        tx.PaymentMethod,
		Operation:            tx.Operation,
		Status:               string(tx.Status),
		BootcoinID:           tx.BootcoinID,
		WalletID:             tx.WalletID,
		BuyRate:              optional(tx.BuyRate),
		SellRate:             optional(tx.SellRate),
		Balance:              balance,
		CreatedDate:          tx.CreatedDate,
		UpdatedDate:          tx.UpdatedDate,
	}
}

func optional(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
