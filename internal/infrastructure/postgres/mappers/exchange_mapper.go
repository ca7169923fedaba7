package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainExchangeRecord(model *models.ExchangeRecordModel) *domain.ExchangeRecord {
	return &domain.ExchangeRecord{
		ID:           model.ID,
		UserID:       model.UserID,
		CurrencyCode: model.CurrencyCode,
		Rate:         model.Rate,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMExchangeRecord(record *domain.ExchangeRecord) *models.ExchangeRecordModel {
	return &models.ExchangeRecordModel{
		ID:           record.ID,
		UserID:       record.UserID,
		CurrencyCode: record.CurrencyCode,
		Rate:         record.Rate,
		CreatedAt:    record.CreatedAt,
	}
}
