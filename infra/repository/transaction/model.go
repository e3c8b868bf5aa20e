package txrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted transaction row.
type Transaction struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProductID            string              `gorm:"type:varchar(64);not null;index:idx_transactions_product_card,priority:1"`
	Type                 string              `gorm:"type:varchar(32);not null"`
	Amount               decimal.Decimal     `gorm:"type:numeric(20,8);not null"`
	Commission           decimal.Decimal     `gorm:"type:numeric(20,8);not null"`
	Description          string              `gorm:"type:text;not null"`
	ClientID             string              `gorm:"type:varchar(64);not null;index"`
	DestinationProductID string              `gorm:"type:varchar(64)"`
	CardID               string              `gorm:"type:varchar(64);index:idx_transactions_product_card,priority:2"`
	Currency             string              `gorm:"type:varchar(8)"`
	PaymentMethod        string              `gorm:"type:varchar(32)"`
	Operation            string              `gorm:"type:varchar(32)"`
	Status               string              `gorm:"type:varchar(16);not null"`
	BootcoinID           string              `gorm:"type:varchar(64);column:bootcoin_id"`
	WalletID             string              `gorm:"type:varchar(64)"`
	BuyRate              decimal.NullDecimal `gorm:"type:numeric(20,8)"`
	SellRate             decimal.NullDecimal `gorm:"type:numeric(20,8)"`
	Balance              decimal.NullDecimal `gorm:"type:numeric(20,8)"`
	CreatedDate          time.Time           `gorm:"not null;index:idx_transactions_created_date,sort:desc"`
	UpdatedDate          time.Time           `gorm:"not null"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
