package user

import (
	"context"
	"errors"
)

var ErrEmailTaken = errors.New("user: email already registered")

// Repository persists user records. Lookups return nil, nil when the
// record does not exist.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
