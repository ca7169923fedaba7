package domain

import "context"

// RateProvider fetches the raw conversion-rates payload from an external
// exchange rate API. Implementations must not outlive their configured
// timeout and must return the payload as decoded JSON.
type RateProvider interface {
	FetchRates(ctx context.Context, currencyCode string) (map[string]any, error)
}
