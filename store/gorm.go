package store

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"finsim/models"
	"finsim/portfolio"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(username, passwordHash string, cash decimal.Decimal) (*models.User, error) {
	// Check first for a clean error; the unique index still backstops races.
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := models.User{
		Username: username,
		Password: passwordHash,
		Cash:     cash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two registrations racing past the check both reach Create; the
		// unique index fails the loser.
		if isDuplicateKey(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") || // mysql
		strings.Contains(msg, "duplicate key value") // postgres
}

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) TradeLog(userID uint) ([]portfolio.Trade, error) {
	var trades []portfolio.Trade
	err := s.db.Model(&models.Transaction{}).
		Select("symbol", "shares").
		Where("user_id = ?", userID).
		Order("id").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load trade log: %w", err)
	}
	return trades, nil
}

func (s *GormStore) TransactionsByUser(userID uint, page, limit int) ([]models.Transaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var transactions []models.Transaction
	err := query.
		Order("trade_date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactions, total, nil
}

func (s *GormStore) HoldingShares(userID uint, symbol string) (int64, error) {
	return holdingShares(s.db, userID, symbol)
}

func holdingShares(db *gorm.DB, userID uint, symbol string) (int64, error) {
	var shares int64
	err := db.Model(&models.Transaction{}).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Select("COALESCE(SUM(shares), 0)").
		Scan(&shares).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum holding: %w", err)
	}
	return shares, nil
}

func (s *GormStore) ExecuteTrade(userID uint, symbol string, shares int64, price decimal.Decimal) (*models.Transaction, decimal.Decimal, error) {
	// MinInt64 has no int64 negation, so the sell-branch `-shares` below
	// would wrap right back to it.
	if shares == 0 || shares == math.MinInt64 {
		return nil, decimal.Zero, ErrInvalidShares
	}

	var record models.Transaction
	var remaining decimal.Decimal

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		// Signed: positive cost debits cash on a buy, negative credits on a sell.
		cost := price.Mul(decimal.NewFromInt(shares))

		if shares > 0 && user.Cash.LessThan(cost) {
			return ErrInsufficientCash
		}
		if shares < 0 {
			held, err := holdingShares(tx, userID, symbol)
			if err != nil {
				return err
			}
			if held < -shares {
				return ErrInsufficientShares
			}
		}

		record = models.Transaction{
			UserID:    userID,
			Symbol:    symbol,
			Shares:    shares,
			AtPrice:   price,
			TradeDate: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		remaining = user.Cash.Sub(cost)
		if err := tx.Model(&user).Update("cash", remaining).Error; err != nil {
			return fmt.Errorf("failed to update cash: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &record, remaining, nil
}

func (s *GormStore) DistinctSymbols() ([]string, error) {
	var symbols []string
	err := s.db.Model(&models.Transaction{}).
		Distinct("symbol").
		Order("symbol").
		Pluck("symbol", &symbols).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}
	return symbols, nil
}
