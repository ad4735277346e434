package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is one executed trade. Shares is signed: positive for a
// buy, negative for a sell. Rows are append-only, never updated.
type Transaction struct {
	gorm.Model
	UserID    uint            `gorm:"not null;index" json:"userId"`
	Symbol    string          `gorm:"not null;index" json:"symbol"`
	Shares    int64           `gorm:"not null" json:"shares"`
	AtPrice   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"atPrice"`
	TradeDate time.Time       `gorm:"not null;index" json:"tradeDate"`
}
