package kafka

type ExchangeEvent struct {
	RecordID     string  `json:"record_id"`
	UserID       string  `json:"user_id"`
	CurrencyCode string  `json:"currency_code"`
	RateToUAH    float64 `json:"rate_to_uah"`
	Cost         int64   `json:"cost"`
	BalanceLeft  int64   `json:"balance_left"`
}
