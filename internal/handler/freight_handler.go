package handler

import (
	"encoding/json"
	"net/http"

	"sarmelo-delivery/internal/model"
	"sarmelo-delivery/internal/service"

	"github.com/rs/zerolog"
)

// FreightHandler handles freight quoting HTTP requests.
type FreightHandler struct {
	service service.FreightService
	logger  zerolog.Logger
}

// NewFreightHandler creates a new freight handler.
func NewFreightHandler(service service.FreightService, logger zerolog.Logger) *FreightHandler {
	return &FreightHandler{
		service: service,
		logger:  logger.With().Str("handler", "freight").Logger(),
	}
}

// Quote handles POST /frete requests.
func (h *FreightHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req model.FreightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", h.logger)
		return
	}

	if req.CustomerAddress == "" || req.RestaurantAddress == "" {
		writeError(w, http.StatusBadRequest, "Informe enderecoCliente e enderecoRestaurante", h.logger)
		return
	}

	quote, err := h.service.Quote(r.Context(), req.CustomerAddress, req.RestaurantAddress)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
