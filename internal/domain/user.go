package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Balance struct {
	UserID string
	Amount int64
}

type UserRepository interface {
	// CreateUserWithBalance inserts the user and its starting balance
	// in one transaction, so a user is never visible without a balance row.
	CreateUserWithBalance(ctx context.Context, user *User, startingBalance int64) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetBalance(ctx context.Context, userID string) (*Balance, error)
}
