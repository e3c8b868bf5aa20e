package txrepo

import (
	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/google/uuid"
)

var columns = map[string]string{
	query.FieldID:          "id",
	query.FieldProductID:   "product_id",
	query.FieldCardID:      "card_id",
	query.FieldCreatedDate: "created_date",
}

func column(field string) string {
	if c, ok := columns[field]; ok {
		return c
	}
	return field
}

func mapDomainToModel(id uuid.UUID, tx *transaction.Transaction) Transaction {
	return Transaction{
		ID:                   id,
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
		BuyRate:              tx.BuyRate,
		SellRate:             tx.SellRate,
		Balance:              tx.Balance,
		CreatedDate:          transaction.Timestamp(tx.CreatedDate),
		UpdatedDate:          transaction.Timestamp(tx.UpdatedDate),
	}
}

func mapModelToDomain(m *Transaction) *transaction.Transaction {
	return &transaction.Transaction{
		ID:                   m.ID.String(),
		ProductID:            m.ProductID,
		Type:                 transaction.Type(m.Type),
		Amount:               m.Amount,
		Commission:           m.Commission,
		Description:          m.Description,
		ClientID:             m.ClientID,
		DestinationProductID: m.DestinationProductID,
		CardID:               m.CardID,
		Currency:             m.Currency,
		PaymentMethod:        m.PaymentMethod,
		Operation:            m.Operation,
		Status:               transaction.Status(m.Status),
		BootcoinID:           m.BootcoinID,
		WalletID:             m.WalletID,
		BuyRate:              m.BuyRate,
		SellRate:             m.SellRate,
		Balance:              m.Balance,
		CreatedDate:          m.CreatedDate.UTC(),
		UpdatedDate:          m.UpdatedDate.UTC(),
	}
}
