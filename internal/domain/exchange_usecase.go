package domain

import "context"

type ExchangeResult struct {
	CurrencyCode string
	RateToUAH    float64
	Cost         int64
	BalanceLeft  int64
}

type ExchangeUsecase interface {
	GetExchangeRate(ctx context.Context, userID, currencyCode string) (*ExchangeResult, error)
	GetHistory(ctx context.Context, userID string, filter HistoryFilter) ([]*ExchangeRecord, int64, error)
}
