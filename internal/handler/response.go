package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/efreitasn/minibourse/internal/domain"
)

// WriteJSON writes a JSON response with the given status code and data.
// Sets Content-Type to application/json before writing the status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Write error intentionally ignored in response helper
}

// errorResponse is the standard error response format.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standard error response with the given status code,
// error code, and human-readable message.
func WriteError(w http.ResponseWriter, status int, errorCode, message string) {
	WriteJSON(w, status, errorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// ParseJSON decodes the request body as JSON into v.
// It validates that the Content-Type header is application/json and
// returns an error for missing/incorrect content type or malformed JSON.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	return nil
}

// mapDomainError translates a domain error into an HTTP error response.
func mapDomainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteError(w, http.StatusBadRequest, "validation_error", verr.Message)
	case errors.Is(err, domain.ErrInvalidName):
		WriteError(w, http.StatusBadRequest, "invalid_name", "name must not be empty or blank")
	case errors.Is(err, domain.ErrNameInUse):
		WriteError(w, http.StatusConflict, "name_in_use", "name is already taken")
	case errors.Is(err, domain.ErrAlreadyListed):
		WriteError(w, http.StatusConflict, "already_listed", "company is already listed on this exchange")
	case errors.Is(err, domain.ErrCompanyNotFound):
		WriteError(w, http.StatusNotFound, "company_not_found", "company does not exist")
	case errors.Is(err, domain.ErrExchangeNotFound):
		WriteError(w, http.StatusNotFound, "exchange_not_found", "exchange does not exist")
	case errors.Is(err, domain.ErrTraderNotFound):
		WriteError(w, http.StatusNotFound, "trader_not_found", "trader does not exist")
	case errors.Is(err, domain.ErrListingNotFound):
		WriteError(w, http.StatusNotFound, "listing_not_found", "company is not listed on this exchange")
	case errors.Is(err, domain.ErrNoHoldings):
		WriteError(w, http.StatusNotFound, "no_holdings", "trader holds no shares of this listing")
	case errors.Is(err, domain.ErrInsufficientFunds):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_funds", "trader cannot afford this purchase")
	case errors.Is(err, domain.ErrInsufficientSupply):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_supply", "not enough shares available")
	case errors.Is(err, domain.ErrInsufficientHoldings):
		WriteError(w, http.StatusUnprocessableEntity, "insufficient_holdings", "trader does not hold enough shares")
	case errors.Is(err, domain.ErrInvariantViolation):
		WriteError(w, http.StatusInternalServerError, "invariant_violation", "internal invariant violated")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
