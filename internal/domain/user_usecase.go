package domain

import "context"

type UserUsecase interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
}
