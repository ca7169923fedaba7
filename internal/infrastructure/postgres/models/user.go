package models

import "time"

type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type BalanceModel struct {
	UserID    string    `gorm:"primaryKey;type:uuid"`
	User      UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Amount    int64     `gorm:"not null;check:amount >= 0"`
	UpdatedAt time.Time
}

func (BalanceModel) TableName() string {
	return "user_balances"
}
