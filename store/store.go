// Package store is the persistence layer: users with a cash balance and
// their append-only trade log.
package store

import (
	"errors"

	"finsim/models"
	"finsim/portfolio"

	"github.com/shopspring/decimal"
)

var (
	// ErrUsernameTaken is returned when registering a username that exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInsufficientCash is returned when a buy costs more than the user holds.
	ErrInsufficientCash = errors.New("insufficient cash")
	// ErrInsufficientShares is returned when a sell exceeds the net holding.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrInvalidShares is returned when a trade's share count is zero or
	// cannot be negated without overflow.
	ErrInvalidShares = errors.New("invalid share count")
)

// Store is the storage collaborator used by the handlers.
type Store interface {
	// CreateUser registers a user with a hashed password and starting cash.
	CreateUser(username, passwordHash string, cash decimal.Decimal) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserByID(id uint) (*models.User, error)

	// TradeLog returns the user's raw (symbol, shares) rows in insertion
	// order, feed for the basket builder.
	TradeLog(userID uint) ([]portfolio.Trade, error)

	// TransactionsByUser returns the user's transactions newest first,
	// with the total count for pagination.
	TransactionsByUser(userID uint, page, limit int) ([]models.Transaction, int64, error)

	// HoldingShares returns the user's net shares of one symbol.
	HoldingShares(userID uint, symbol string) (int64, error)

	// ExecuteTrade appends a transaction and adjusts the user's cash in a
	// single database transaction. Shares is signed; price is the quote
	// at execution time. Affordability (buys) and holdings (sells) are
	// re-checked inside the transaction. Returns the new row and the
	// user's remaining cash.
	ExecuteTrade(userID uint, symbol string, shares int64, price decimal.Decimal) (*models.Transaction, decimal.Decimal, error)

	// DistinctSymbols lists every symbol that appears in the trade log.
	DistinctSymbols() ([]string, error)
}
