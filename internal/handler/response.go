package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxipark/internal/domain"
	"taxipark/internal/repository"
	"taxipark/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	_ = c.Error(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidMinTrips):
		return http.StatusBadRequest

	// Data source rejected the dataset
	case errors.Is(err, domain.ErrInvalidPark):
		return http.StatusUnprocessableEntity

	// Service unavailable
	case errors.Is(err, service.ErrSnapshotNotLoaded),
		errors.Is(err, repository.ErrSnapshotUnavailable):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
