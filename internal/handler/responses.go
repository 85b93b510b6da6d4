package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError  = "Not signed in. Run the login command first."
	ErrMsgNotFoundError      = "Resource not found."
	ErrMsgBackendError       = "The game server is having trouble. Please try again."

	ErrMsgNoPlantedTreeError = "Plant a seed first"
	ErrMsgTapWhileReadyError = "Your tree is grown. Sell it to plant again."
	ErrMsgNotReadyError      = "Your tree is still growing"
	ErrMsgSlotOccupiedError  = "This slot already has a tree"
	ErrMsgSeedLockedError    = "That seed is locked"
	ErrMsgSeedNotFoundError  = "Seed not found"
	ErrMsgInvalidBoostError  = "Boost type must be time or sell"
	ErrMsgSubmissionError    = "Watering could not be saved. Keep tapping to retry."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoPlantedTree):
		return http.StatusConflict, ErrMsgNoPlantedTreeError
	case errors.Is(err, domain.ErrTapWhileReady):
		return http.StatusConflict, ErrMsgTapWhileReadyError
	case errors.Is(err, domain.ErrNotReady):
		return http.StatusConflict, ErrMsgNotReadyError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrSeedLocked):
		return http.StatusForbidden, ErrMsgSeedLockedError
	case errors.Is(err, domain.ErrSeedNotFound):
		return http.StatusNotFound, ErrMsgSeedNotFoundError
	case errors.Is(err, domain.ErrInvalidBoostType):
		return http.StatusBadRequest, ErrMsgInvalidBoostError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusBadGateway, ErrMsgSubmissionError
	case errors.Is(err, domain.ErrBackendFailure), errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway, ErrMsgBackendError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
