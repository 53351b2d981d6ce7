package model

import "time"

// Trip status values. Status transitions past Pending are an administrative
// concern handled outside this API.
const (
	TripStatusPending   = "Pending"
	TripStatusConfirmed = "Confirmed"
	TripStatusCompleted = "Completed"
)

// Trip represents a booking record in the database. UserID is nil for
// anonymous bookings.
type Trip struct {
	ID            int64
	BookingRef    string
	UserID        *int64
	FirstName     string
	LastName      string
	Phone         string
	Email         string
	From          string
	Destination   string
	PickupAddress string
	Status        string
	CreatedAt     time.Time
}

// BookTripRequest represents a trip booking request. Token is optional;
// a valid one attributes the booking to the caller.
type BookTripRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	From          string `json:"from"`
	Destination   string `json:"destination"`
	PickupAddress string `json:"pickupAddress"`
	Token         string `json:"token,omitempty"`
}

// BookTripResponse confirms a successful booking.
type BookTripResponse struct {
	Message    string `json:"message"`
	BookingRef string `json:"bookingRef"`
}

// TripResponse represents a trip in API responses.
type TripResponse struct {
	ID            int64     `json:"id"`
	BookingRef    string    `json:"bookingRef"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	From          string    `json:"from"`
	Destination   string    `json:"destination"`
	PickupAddress string    `json:"pickupAddress"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
