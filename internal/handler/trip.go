package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tripbook/tripbook-go/internal/middleware"
	"github.com/tripbook/tripbook-go/internal/model"
	"github.com/tripbook/tripbook-go/internal/service"
)

// TripHandler handles HTTP requests for trip booking and history.
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{service: svc}
}

// HandleBookTrip handles POST /api/book-trip requests. No authentication is
// required; a valid token in the body attributes the booking.
func (h *TripHandler) HandleBookTrip(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.BookTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.BookTrip(r.Context(), req)
	if err != nil {
		var fieldErr *service.FieldError
		if errors.As(err, &fieldErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse(fieldErr.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleMyTrips handles GET /api/my-trips requests.
func (h *TripHandler) HandleMyTrips(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("no token provided"))
		return
	}

	trips, err := h.service.MyTrips(r.Context(), identity.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, trips)
}
