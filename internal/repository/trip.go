package repository

import (
	"context"
	"database/sql"

	"github.com/tripbook/tripbook-go/internal/model"
)

// TripRepository handles trip persistence operations.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new TripRepository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create inserts a new trip and sets the generated ID and creation time on
// the trip struct.
func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	query := `INSERT INTO trips
		(booking_ref, user_id, first_name, last_name, phone, email, origin, destination, pickup_address, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var userID sql.NullInt64
	if trip.UserID != nil {
		userID = sql.NullInt64{Int64: *trip.UserID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		trip.BookingRef, userID, trip.FirstName, trip.LastName,
		trip.Phone, trip.Email, trip.From, trip.Destination,
		trip.PickupAddress, trip.Status,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	trip.ID = id
	return nil
}

// ListByUser retrieves all trips booked by a user, most recent first. The id
// tie-break keeps the order stable for trips created within the same second.
func (r *TripRepository) ListByUser(ctx context.Context, userID int64) ([]model.Trip, error) {
	query := `SELECT id, booking_ref, user_id, first_name, last_name, phone, email, origin, destination, pickup_address, status, created_at
		FROM trips WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []model.Trip
	for rows.Next() {
		var trip model.Trip
		var owner sql.NullInt64
		if err := rows.Scan(
			&trip.ID, &trip.BookingRef, &owner, &trip.FirstName, &trip.LastName,
			&trip.Phone, &trip.Email, &trip.From, &trip.Destination,
			&trip.PickupAddress, &trip.Status, &trip.CreatedAt,
		); err != nil {
			return nil, err
		}
		if owner.Valid {
			id := owner.Int64
			trip.UserID = &id
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}
