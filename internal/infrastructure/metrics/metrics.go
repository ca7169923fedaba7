package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ExchangeMetrics struct {
	ExchangesTotal       prometheus.CounterVec
	ExchangeErrorsTotal  prometheus.CounterVec
	BalanceDebitedTotal  prometheus.Counter
	RateFetchDuration    prometheus.Histogram
	UsersRegisteredTotal prometheus.Counter
}

func NewExchangeMetrics() *ExchangeMetrics {
	return &ExchangeMetrics{
		ExchangesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_total",
				Help: "Completed currency exchange lookups",
			},
			[]string{"currency"},
		),

		ExchangeErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_errors_total",
				Help: "Failed currency exchange lookups",
			},
			[]string{"reason"},
		),

		BalanceDebitedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "balance_debited_total",
				Help: "Total cost units debited from user balances",
			},
		),

		RateFetchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rate_fetch_duration_seconds",
				Help:    "Duration of external rate API calls",
				Buckets: prometheus.DefBuckets,
			},
		),

		UsersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Registered users",
			},
		),
	}
}
