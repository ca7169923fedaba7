package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/auth"
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type memoryUserStore struct {
	users    map[string]*domain.User
	balances map[string]int64
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		users:    make(map[string]*domain.User),
		balances: make(map[string]int64),
	}
}

func (s *memoryUserStore) CreateUserWithBalance(ctx context.Context, user *domain.User, startingBalance int64) error {
	if _, exists := s.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	s.users[user.Username] = user
	s.balances[user.ID] = startingBalance
	return nil
}

func (s *memoryUserStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, exists := s.users[username]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *memoryUserStore) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	amount, exists := s.balances[userID]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return &domain.Balance{UserID: userID, Amount: amount}, nil
}

func newTestUserUsecase(store *memoryUserStore) (*DefaultUserUsecase, *auth.TokenManager) {
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)
	return NewDefaultUserUsecase(store, tokenManager, nil, 1000), tokenManager
}

func TestRegisterCreatesUserWithStartingBalance(t *testing.T) {
	store := newMemoryUserStore()
	uc, _ := newTestUserUsecase(store)

	user, err := uc.Register(context.Background(), "u1", "pass12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("user ID was not generated")
	}
	if user.PasswordHash == "pass12345" {
		t.Fatal("password stored without hashing")
	}

	balance, err := uc.GetBalance(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 1000 {
		t.Fatalf("expected starting balance 1000, got %d", balance)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newMemoryUserStore()
	uc, _ := newTestUserUsecase(store)

	if _, err := uc.Register(context.Background(), "u1", "pass12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Register(context.Background(), "u1", "other-pass"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := newMemoryUserStore()
	uc, _ := newTestUserUsecase(store)

	if _, err := uc.Register(context.Background(), "  ", "pass12345"); !errors.Is(err, domain.ErrUsernameRequired) {
		t.Fatalf("expected ErrUsernameRequired, got %v", err)
	}
	if _, err := uc.Register(context.Background(), "u1", "short"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	store := newMemoryUserStore()
	uc, tokenManager := newTestUserUsecase(store)

	user, err := uc.Register(context.Background(), "u1", "pass12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := uc.Login(context.Background(), "u1", "pass12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := tokenManager.Parse(token)
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token subject %q does not match user %q", userID, user.ID)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	store := newMemoryUserStore()
	uc, _ := newTestUserUsecase(store)

	if _, err := uc.Register(context.Background(), "u1", "pass12345"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Login(context.Background(), "u1", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(context.Background(), "missing", "pass12345"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
