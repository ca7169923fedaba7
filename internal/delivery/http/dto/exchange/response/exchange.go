package response

import "time"

type ExchangeResponse struct {
	CurrencyCode string  `json:"currency_code"`
	RateToUAH    float64 `json:"rate_to_uah"`
	Cost         int64   `json:"cost"`
	BalanceLeft  int64   `json:"balance_left"`
}

type HistoryRecord struct {
	ID           string    `json:"id"`
	CurrencyCode string    `json:"currency_code"`
	Rate         float64   `json:"rate"`
	CreatedAt    time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Records []HistoryRecord `json:"records"`
	Total   int64           `json:"total"`
	Page    int64           `json:"page"`
	Limit   int64           `json:"limit"`
}
