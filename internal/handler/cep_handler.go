package handler

import (
	"context"
	"errors"
	"net/http"

	"sarmelo-delivery/internal/geo"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PostcodeLookup resolves a Brazilian postcode to its registered address.
// Satisfied by *geo.ViaCEP.
type PostcodeLookup interface {
	Lookup(ctx context.Context, cep string) (*geo.CEPAddress, error)
}

// CEPHandler proxies postcode lookups so the frontend never talks to ViaCEP
// directly.
type CEPHandler struct {
	lookup PostcodeLookup
	logger zerolog.Logger
}

// NewCEPHandler creates a new postcode lookup handler.
func NewCEPHandler(lookup PostcodeLookup, logger zerolog.Logger) *CEPHandler {
	return &CEPHandler{
		lookup: lookup,
		logger: logger.With().Str("handler", "cep").Logger(),
	}
}

// Lookup handles GET /viacep/{cep} requests.
func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	address, err := h.lookup.Lookup(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrCEPInvalid):
			writeError(w, http.StatusBadRequest, "CEP inválido. Digite 8 dígitos.", h.logger)
		case errors.Is(err, geo.ErrCEPNotFound):
			writeError(w, http.StatusNotFound, "CEP não encontrado", h.logger)
		default:
			h.logger.Error().Err(err).Msg("viacep lookup failed")
			writeError(w, http.StatusInternalServerError, "Falha ao buscar CEP no ViaCEP", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, address)
}
