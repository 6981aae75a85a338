package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/abyssinia-labs/pocketbank/internal/domain/error"
)

// httpStatus maps a domain error to the HTTP status code of its response
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrSelfTransfer),
		errors.Is(err, domainerr.ErrInvalidAccountType),
		errors.Is(err, domainerr.ErrInvalidUsername):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrUnknownUser),
		errors.Is(err, domainerr.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrAccountLocked):
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the error text safe to expose to API clients.
// Internal failures collapse to a generic message.
func publicMessage(err error) string {
	if httpStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
