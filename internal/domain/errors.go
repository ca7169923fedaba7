package domain

import "errors"

var (
	ErrNotEnoughBalance   = errors.New("insufficient balance for this exchange")
	ErrExternalAPI        = errors.New("exchange rate API failure")
	ErrInvalidCurrency    = errors.New("currency_code must be 3 letters, like 'USD'")
	ErrNoPositiveBalance  = errors.New("user does not have enough balance")
	ErrUserExists         = errors.New("user with this username already exists")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
