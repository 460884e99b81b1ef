package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sarmelo-delivery/internal/geo"
	"sarmelo-delivery/internal/model"

	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP status codes.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:    http.StatusBadRequest,
	model.ErrCodeValidation:     http.StatusBadRequest,
	model.ErrCodeItemNotFound:   http.StatusBadRequest,
	model.ErrCodeCouponMinimum:  http.StatusBadRequest,
	model.ErrCodeCouponExists:   http.StatusBadRequest,
	model.ErrCodeCouponNotFound: http.StatusNotFound,
	model.ErrCodeOrderNotFound:  http.StatusNotFound,
	model.ErrCodeUnauthorised:   http.StatusUnauthorized,
	model.ErrCodeForbidden:      http.StatusForbidden,
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service-layer error to an HTTP response. Domain
// errors carry their own status; geocoding exhaustion surfaces as a server
// failure with diagnostic detail; everything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusByCode[domainErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		writeError(w, status, domainErr.Message, logger)
		return
	}

	if errors.Is(err, geo.ErrAddressUnresolvable) {
		logger.Error().Err(err).Msg("geocoding chain exhausted")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   "Não foi possível calcular o frete",
			Details: err.Error(),
		})
		return
	}

	logger.Error().Err(err).Msg("internal error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: "Erro no servidor"})
}
