package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUserWithBalance(ctx context.Context, user *domain.User, startingBalance int64) error {
	userModel := mappers.ToGORMUser(user)
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		balanceModel := models.BalanceModel{
			UserID: userModel.ID,
			Amount: startingBalance,
		}
		return tx.Create(&balanceModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return err
	}
	user.CreatedAt = userModel.CreatedAt
	return nil
}

func (r *DefaultUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.WithContext(ctx).First(&userModel, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	var balanceModel models.BalanceModel
	if err := r.DB.WithContext(ctx).First(&balanceModel, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBalance(&balanceModel), nil
}
