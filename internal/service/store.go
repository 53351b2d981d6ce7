package service

import (
	"context"

	"github.com/tripbook/tripbook-go/internal/model"
)

// UserStore is the persistence surface the auth service needs. Implemented
// by repository.UserRepository; tests substitute an in-memory store.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// TripStore is the persistence surface the trip service needs. Implemented
// by repository.TripRepository.
type TripStore interface {
	Create(ctx context.Context, trip *model.Trip) error
	ListByUser(ctx context.Context, userID int64) ([]model.Trip, error)
}
