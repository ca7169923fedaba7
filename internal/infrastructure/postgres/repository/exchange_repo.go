package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultExchangeRepository struct {
	DB *gorm.DB
}

func NewDefaultExchangeRepository(db *gorm.DB) *DefaultExchangeRepository {
	return &DefaultExchangeRepository{DB: db}
}

// TryDebitAndRecord locks the balance row with SELECT ... FOR UPDATE, so two
// overlapping exchanges for one user cannot both pass the balance check
// against a stale read.
func (r *DefaultExchangeRepository) TryDebitAndRecord(
	ctx context.Context,
	userID string,
	cost int64,
	record *domain.ExchangeRecord,
) (int64, error) {
	var balanceLeft int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balanceModel models.BalanceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&balanceModel, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		if balanceModel.Amount < cost {
			return domain.ErrNotEnoughBalance
		}

		if err := tx.Model(&models.BalanceModel{}).
			Where("user_id = ?", userID).
			Update("amount", gorm.Expr("amount - ?", cost)).Error; err != nil {
			return err
		}
		balanceLeft = balanceModel.Amount - cost

		recordModel := mappers.ToGORMExchangeRecord(record)
		if err := tx.Create(recordModel).Error; err != nil {
			return err
		}
		record.CreatedAt = recordModel.CreatedAt
		return nil
	})
	if err != nil {
		return 0, err
	}

	return balanceLeft, nil
}

func (r *DefaultExchangeRepository) GetHistoryByUserID(
	ctx context.Context,
	userID string,
	filter domain.HistoryFilter,
) ([]*domain.ExchangeRecord, int64, error) {
	var recordModels []models.ExchangeRecordModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.ExchangeRecordModel{}).
		Where("user_id = ?", userID)

	if filter.CurrencyCode != "" {
		baseQuery = baseQuery.Where("UPPER(currency_code) = ?", strings.ToUpper(filter.CurrencyCode))
	}

	if !filter.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filter.DateFrom)
	}

	if !filter.DateTo.IsZero() {
		// inclusive against the creation date
		baseQuery = baseQuery.Where("created_at < ?", filter.DateTo.AddDate(0, 0, 1))
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count exchange records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&recordModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find exchange records: %w", err)
	}

	records := make([]*domain.ExchangeRecord, len(recordModels))
	for i, recordModel := range recordModels {
		records[i] = mappers.ToDomainExchangeRecord(&recordModel)
	}

	return records, total, nil
}
