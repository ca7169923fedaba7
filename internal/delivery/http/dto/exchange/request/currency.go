package request

type CurrencyRequest struct {
	CurrencyCode string `json:"currency_code"`
}
