package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/auth"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type DefaultUserUsecase struct {
	userRepo        domain.UserRepository
	tokenManager    *auth.TokenManager
	metrics         *metrics.ExchangeMetrics
	startingBalance int64
}

func NewDefaultUserUsecase(
	userRepo domain.UserRepository,
	tokenManager *auth.TokenManager,
	m *metrics.ExchangeMetrics,
	startingBalance int64,
) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		userRepo:        userRepo,
		tokenManager:    tokenManager,
		metrics:         m,
		startingBalance: startingBalance,
	}
}

func (uc *DefaultUserUsecase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if len(password) < 6 {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.CreateUserWithBalance(ctx, user, uc.startingBalance); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.UsersRegisteredTotal.Inc()
	}

	return user, nil
}

func (uc *DefaultUserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return uc.tokenManager.Generate(user.ID)
}

func (uc *DefaultUserUsecase) GetBalance(ctx context.Context, userID string) (int64, error) {
	balance, err := uc.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return balance.Amount, nil
}
