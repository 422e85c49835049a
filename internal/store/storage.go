package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, *User) error
		GetByEmail(context.Context, string) (*User, error)
		List(context.Context) ([]User, error)
	}
	Reviews interface {
		Upsert(context.Context, *Review) (bool, error)
		GetByBrewery(context.Context, string) ([]Review, error)
		AverageRating(context.Context, string) (float64, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:   &UsersStore{db},
		Reviews: &ReviewsStore{db},
	}
}
