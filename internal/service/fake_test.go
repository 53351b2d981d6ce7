package service

import (
	"context"
	"sort"
	"time"

	"github.com/tripbook/tripbook-go/internal/model"
	"github.com/tripbook/tripbook-go/internal/repository"
)

// memUserStore is an in-memory UserStore that enforces the same uniqueness
// rules as the MySQL schema.
type memUserStore struct {
	users  []model.User
	nextID int64
	// failCreate forces Create to return this error, simulating a store
	// failure or a lost uniqueness race.
	failCreate error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *memUserStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// memTripStore is an in-memory TripStore with the same ordering semantics as
// the trips query.
type memTripStore struct {
	trips      []model.Trip
	nextID     int64
	failCreate error
	// now lets tests pin creation timestamps.
	now func() time.Time
}

func newMemTripStore() *memTripStore {
	return &memTripStore{nextID: 1, now: time.Now}
}

func (s *memTripStore) Create(_ context.Context, trip *model.Trip) error {
	if s.failCreate != nil {
		return s.failCreate
	}
	trip.ID = s.nextID
	trip.CreatedAt = s.now()
	s.nextID++
	s.trips = append(s.trips, *trip)
	return nil
}

func (s *memTripStore) ListByUser(_ context.Context, userID int64) ([]model.Trip, error) {
	var out []model.Trip
	for _, t := range s.trips {
		if t.UserID != nil && *t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
