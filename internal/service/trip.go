package service

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/tripbook/tripbook-go/internal/crypto"
	"github.com/tripbook/tripbook-go/internal/model"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`.+@.+\..+`)
)

// TripService handles trip booking and lookup.
type TripService struct {
	trips     TripStore
	jwtSecret string
}

// NewTripService creates a new TripService.
func NewTripService(trips TripStore, secret string) *TripService {
	return &TripService{
		trips:     trips,
		jwtSecret: secret,
	}
}

// BookTrip validates and records a booking. A valid token in the request
// attributes the trip to its user; an invalid or absent one books
// anonymously.
func (s *TripService) BookTrip(ctx context.Context, req model.BookTripRequest) (model.BookTripResponse, error) {
	if err := validateBooking(req); err != nil {
		return model.BookTripResponse{}, err
	}

	trip := &model.Trip{
		BookingRef:    uuid.NewString(),
		UserID:        s.resolveUserID(req.Token),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         req.Email,
		From:          req.From,
		Destination:   req.Destination,
		PickupAddress: req.PickupAddress,
		Status:        model.TripStatusPending,
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return model.BookTripResponse{}, err
	}

	return model.BookTripResponse{
		Message:    "Trip booked successfully!",
		BookingRef: trip.BookingRef,
	}, nil
}

// MyTrips lists a user's bookings, most recent first. Returns an empty slice
// rather than nil so the response serializes as a JSON array.
func (s *TripService) MyTrips(ctx context.Context, userID int64) ([]model.TripResponse, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, model.TripResponse{
			ID:            trip.ID,
			BookingRef:    trip.BookingRef,
			FirstName:     trip.FirstName,
			LastName:      trip.LastName,
			Phone:         trip.Phone,
			Email:         trip.Email,
			From:          trip.From,
			Destination:   trip.Destination,
			PickupAddress: trip.PickupAddress,
			Status:        trip.Status,
			CreatedAt:     trip.CreatedAt,
		})
	}

	return out, nil
}

// resolveUserID resolves a booking token to a user ID on a best-effort
// basis. Expired, tampered or absent tokens book anonymously; no failure
// ever reaches the caller.
func (s *TripService) resolveUserID(token string) *int64 {
	if token == "" {
		return nil
	}

	claims, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	return &claims.UserID
}

func validateBooking(req model.BookTripRequest) error {
	if req.FirstName == "" {
		return missingField("firstName")
	}
	if req.LastName == "" {
		return missingField("lastName")
	}
	if req.Phone == "" {
		return missingField("phone")
	}
	if req.Email == "" {
		return missingField("email")
	}
	if req.From == "" {
		return missingField("from")
	}
	if req.Destination == "" {
		return missingField("destination")
	}
	if req.PickupAddress == "" {
		return missingField("pickupAddress")
	}

	if !phonePattern.MatchString(req.Phone) {
		return &FieldError{Field: "phone", Message: "must be exactly 10 digits"}
	}
	if !emailPattern.MatchString(req.Email) {
		return &FieldError{Field: "email", Message: "must be a valid email address"}
	}

	return nil
}
