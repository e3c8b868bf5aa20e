package mongorepo

import (
	"fmt"
	"time"

	"github.com/amirasaad/txrecords/pkg/domain/transaction"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// document is the stored shape of a transaction.
type document struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ProductID            string             `bson:"productId"`
	Type                 string             `bson:"type"`
	Amount               number             `bson:"amount"`
	Commission           number             `bson:"commission"`
	Description          string             `bson:"description"`
	ClientID             string             `bson:"clientId"`
	DestinationProductID string             `bson:"destinationProductId,omitempty"`
	CardID               string             `bson:"cardId,omitempty"`
	Currency             string             `bson:"currency"`
	PaymentMethod        string             `bson:"paymentMethod"`
	Operation            string             `bson:"operation"`
	Status               string             `bson:"status"`
	BootcoinID           string             `bson:"bootcoinId,omitempty"`
	WalletID             string             `bson:"walletId,omitempty"`
	BuyRate              *number            `bson:"buyRate,omitempty"`
	SellRate             *number            `bson:"sellRate,omitempty"`
	Balance              *number            `bson:"balance,omitempty"`
	CreatedDate          time.Time          `bson:"createdDate"`
	UpdatedDate          time.Time          `bson:"updatedDate"`
}

// number is written as Decimal128 and read back from any BSON numeric type,
// since older records hold doubles.
type number struct {
	decimal.Decimal
}

func (n number) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d, err := primitive.ParseDecimal128(n.String())
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s as decimal128: %w", n.String(), err)
	}
	return bson.MarshalValue(d)
}

func (n *number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		v, err := decimal.NewFromString(rv.Decimal128().String())
		if err != nil {
			return fmt.Errorf("decode decimal128: %w", err)
		}
		n.Decimal = v
	case bson.TypeDouble:
		n.Decimal = decimal.NewFromFloat(rv.Double())
	case bson.TypeInt32:
		n.Decimal = decimal.NewFromInt32(rv.Int32())
	case bson.TypeInt64:
		n.Decimal = decimal.NewFromInt(rv.Int64())
	default:
		return fmt.Errorf("cannot decode BSON %s as a number", t)
	}
	return nil
}

func optionalNumber(d decimal.NullDecimal) *number {
	if !d.Valid {
		return nil
	}
	return &number{d.Decimal}
}

func nullDecimal(n *number) decimal.NullDecimal {
	if n == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(n.Decimal)
}

func toDocument(id primitive.ObjectID, tx *transaction.Transaction) document {
	return document{
		ID:                   id,
		ProductID:            tx.ProductID,
		Type:                 string(tx.Type),
		Amount:               number{tx.Amount},
		Commission:           number{tx.Commission},
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
		BuyRate:              optionalNumber(tx.BuyRate),
		SellRate:             optionalNumber(tx.SellRate),
		Balance:              optionalNumber(tx.Balance),
		CreatedDate:          transaction.Timestamp(tx.CreatedDate),
		UpdatedDate:          transaction.Timestamp(tx.UpdatedDate),
	}
}

func (d *document) toDomain() *transaction.Transaction {
	return &transaction.Transaction{
		ID:                   d.ID.Hex(),
		ProductID:            d.ProductID,
		Type:                 transaction.Type(d.Type),
		Amount:               d.Amount.Decimal,
		Commission:           d.Commission.Decimal,
		Description:          d.Description,
		ClientID:             d.ClientID,
		DestinationProductID: d.DestinationProductID,
		CardID:               d.CardID,
		Currency:             d.Currency,
		PaymentMethod:        d.PaymentMethod,
		Operation:            d.Operation,
		Status:               transaction.Status(d.Status),
		BootcoinID:           d.BootcoinID,
		WalletID:             d.WalletID,
		BuyRate:              nullDecimal(d.BuyRate),
		SellRate:             nullDecimal(d.SellRate),
		Balance:              nullDecimal(d.Balance),
		CreatedDate:          d.CreatedDate.UTC(),
		UpdatedDate:          d.UpdatedDate.UTC(),
	}
}
