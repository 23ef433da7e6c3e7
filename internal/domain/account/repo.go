package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email is already registered")
)

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
}
