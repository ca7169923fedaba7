package domain

import (
	"context"
	"strings"
	"time"
	"unicode"
)

type ExchangeRecord struct {
	ID           string
	UserID       string
	CurrencyCode string
	Rate         float64
	CreatedAt    time.Time
}

type HistoryFilter struct {
	CurrencyCode string
	DateFrom     time.Time
	DateTo       time.Time
	Page         int64
	Limit        int64
}

type ExchangeRepository interface {
	// TryDebitAndRecord subtracts cost from the user's balance and inserts
	// the exchange record in a single transaction. The balance row is locked
	// for the duration, so concurrent debits for one user serialize.
	// Returns the balance left after the debit, or ErrNotEnoughBalance with
	// nothing written.
	TryDebitAndRecord(ctx context.Context, userID string, cost int64, record *ExchangeRecord) (int64, error)
	GetHistoryByUserID(ctx context.Context, userID string, filter HistoryFilter) ([]*ExchangeRecord, int64, error)
}

// NormalizeCurrencyCode trims and upper-cases a currency code, returning
// ErrInvalidCurrency unless the result is exactly 3 ASCII letters.
func NormalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", ErrInvalidCurrency
		}
	}
	return code, nil
}
