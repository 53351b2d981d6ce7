package service

import (
	"context"
	"errors"
	"time"

	"github.com/tripbook/tripbook-go/internal/crypto"
	"github.com/tripbook/tripbook-go/internal/model"
	"github.com/tripbook/tripbook-go/internal/repository"
)

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	users     UserStore
	hasher    *crypto.Hasher
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher *crypto.Hasher, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. No token is issued; the caller logs
// in separately.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.FullName == "" {
		return missingField("fullName")
	}
	if req.Username == "" {
		return missingField("username")
	}
	if req.Email == "" {
		return missingField("email")
	}
	if req.Password == "" {
		return missingField("password")
	}

	// Fast-path duplicate check. The unique indexes settle the
	// check-then-insert race below.
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		AuthHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns a token with a public user
// projection. Unknown username and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Username == "" {
		return model.LoginResponse{}, missingField("username")
	}
	if req.Password == "" {
		return model.LoginResponse{}, missingField("password")
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	// A malformed stored digest reads as a mismatch, not a server error.
	match, err := s.hasher.Verify(req.Password, user.AuthHash)
	if err != nil || !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    userToResponse(user),
	}, nil
}

// GetProfile retrieves the public projection of a user by ID.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return userToResponse(user), nil
}

func userToResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
