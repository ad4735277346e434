package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string          `gorm:"uniqueIndex;not null" json:"username"`
	Password string          `gorm:"not null" json:"-"`
	Cash     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"cash"`
}
