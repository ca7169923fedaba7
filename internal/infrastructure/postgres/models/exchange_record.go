package models

import "time"

type ExchangeRecordModel struct {
	ID           string    `gorm:"primaryKey"`
	UserID       string    `gorm:"type:uuid;not null;index:idx_user_currency_created,priority:1"`
	User         UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CurrencyCode string    `gorm:"size:10;not null;index:idx_user_currency_created,priority:2"`
	Rate         float64   `gorm:"type:decimal(18,8);not null"`
	CreatedAt    time.Time `gorm:"index:idx_user_currency_created,priority:3"`
}

func (ExchangeRecordModel) TableName() string {
	return "exchange_records"
}
