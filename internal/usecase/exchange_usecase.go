package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	publisher "github.com/LavaJover/shvark-exchange-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/jaevor/go-nanoid"
)

type DefaultExchangeUsecase struct {
	exchangeRepo domain.ExchangeRepository
	userRepo     domain.UserRepository
	provider     domain.RateProvider
	publisher    domain.PublisherPort
	metrics      *metrics.ExchangeMetrics

	costPerRequest int64
	eventTopic     string
	newRecordID    func() string
}

func NewDefaultExchangeUsecase(
	exchangeRepo domain.ExchangeRepository,
	userRepo domain.UserRepository,
	provider domain.RateProvider,
	pub domain.PublisherPort,
	m *metrics.ExchangeMetrics,
	costPerRequest int64,
	eventTopic string,
) (*DefaultExchangeUsecase, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &DefaultExchangeUsecase{
		exchangeRepo:   exchangeRepo,
		userRepo:       userRepo,
		provider:       provider,
		publisher:      pub,
		metrics:        m,
		costPerRequest: costPerRequest,
		eventTopic:     eventTopic,
		newRecordID:    idGenerator,
	}, nil
}

// GetExchangeRate runs the exchange workflow: validate, fetch the rate from
// the external API, then debit the per-request cost and persist the record in
// one transaction. The fetch happens before the transaction, so no lock is
// held during network latency.
func (uc *DefaultExchangeUsecase) GetExchangeRate(ctx context.Context, userID, currencyCode string) (*domain.ExchangeResult, error) {
	code, err := domain.NormalizeCurrencyCode(currencyCode)
	if err != nil {
		uc.countError("validation")
		return nil, err
	}

	balance, err := uc.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.Amount <= 0 {
		uc.countError("validation")
		return nil, domain.ErrNoPositiveBalance
	}

	fetchStart := time.Now()
	rawData, err := uc.provider.FetchRates(ctx, code)
	if uc.metrics != nil {
		uc.metrics.RateFetchDuration.Observe(time.Since(fetchStart).Seconds())
	}
	if err != nil {
		uc.countError("external_api")
		return nil, err
	}

	rate, err := RetrieveUAHRate(rawData, code)
	if err != nil {
		uc.countError("external_api")
		return nil, err
	}

	record := &domain.ExchangeRecord{
		ID:           uc.newRecordID(),
		UserID:       userID,
		CurrencyCode: code,
		Rate:         rate,
	}

	balanceLeft, err := uc.exchangeRepo.TryDebitAndRecord(ctx, userID, uc.costPerRequest, record)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughBalance) {
			uc.countError("not_enough_balance")
		} else {
			uc.countError("storage")
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ExchangesTotal.WithLabelValues(code).Inc()
		uc.metrics.BalanceDebitedTotal.Add(float64(uc.costPerRequest))
	}

	uc.publishExchangeEvent(record, balanceLeft)

	return &domain.ExchangeResult{
		CurrencyCode: code,
		RateToUAH:    rate,
		Cost:         uc.costPerRequest,
		BalanceLeft:  balanceLeft,
	}, nil
}

func (uc *DefaultExchangeUsecase) GetHistory(ctx context.Context, userID string, filter domain.HistoryFilter) ([]*domain.ExchangeRecord, int64, error) {
	return uc.exchangeRepo.GetHistoryByUserID(ctx, userID, filter)
}

// RetrieveUAHRate extracts the UAH conversion rate from the provider payload.
// Only JSON numbers are accepted: a string-typed rate means the upstream
// contract was violated, even if the string parses as a number.
func RetrieveUAHRate(data map[string]any, currencyCode string) (float64, error) {
	rawRates, ok := data["conversion_rates"]
	if !ok {
		return 0, fmt.Errorf("%w: no conversion_rates in response for %s", domain.ErrExternalAPI, currencyCode)
	}
	rates, ok := rawRates.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: malformed conversion_rates for %s", domain.ErrExternalAPI, currencyCode)
	}
	rawRate, ok := rates["UAH"]
	if !ok {
		return 0, fmt.Errorf("%w: no UAH rate in response for %s", domain.ErrExternalAPI, currencyCode)
	}
	rate, ok := rawRate.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: invalid rate type received for %s", domain.ErrExternalAPI, currencyCode)
	}
	return rate, nil
}

// publishExchangeEvent is best effort: a broker failure must not fail an
// already committed exchange.
func (uc *DefaultExchangeUsecase) publishExchangeEvent(record *domain.ExchangeRecord, balanceLeft int64) {
	if uc.publisher == nil {
		return
	}

	event := publisher.ExchangeEvent{
		RecordID:     record.ID,
		UserID:       record.UserID,
		CurrencyCode: record.CurrencyCode,
		RateToUAH:    record.Rate,
		Cost:         uc.costPerRequest,
		BalanceLeft:  balanceLeft,
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal exchange event", "record_id", record.ID, "error", err.Error())
		return
	}

	if err := uc.publisher.Publish(uc.eventTopic, domain.Message{Key: []byte(record.UserID), Value: value}); err != nil {
		slog.Warn("failed to publish exchange event", "record_id", record.ID, "error", err.Error())
	}
}

func (uc *DefaultExchangeUsecase) countError(reason string) {
	if uc.metrics != nil {
		uc.metrics.ExchangeErrorsTotal.WithLabelValues(reason).Inc()
	}
}
