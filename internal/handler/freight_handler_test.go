package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarmelo-delivery/internal/geo"
	"sarmelo-delivery/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFreightHandlerQuote(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Successful quote", func(t *testing.T) {
		mockService := new(MockFreightService)
		handler := NewFreightHandler(mockService, logger)

		mockService.On("Quote", mock.Anything, "Rua A, 100", "Av. B, 200").
			Return(&model.FreightQuote{
				Km:     3.4,
				Fee:    8.40,
				Source: "positionstack",
				Note:   "Geocoding via Positionstack",
			}, nil)

		body := `{"enderecoCliente":"Rua A, 100","enderecoRestaurante":"Av. B, 200"}`
		req := httptest.NewRequest(http.MethodPost, "/frete", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var quote model.FreightQuote
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
		assert.Equal(t, 3.4, quote.Km)
		assert.Equal(t, 8.40, quote.Fee)
		assert.Equal(t, "positionstack", quote.Source)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing customer address", func(t *testing.T) {
		mockService := new(MockFreightService)
		handler := NewFreightHandler(mockService, logger)

		body := `{"enderecoRestaurante":"Av. B, 200"}`
		req := httptest.NewRequest(http.MethodPost, "/frete", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Informe enderecoCliente e enderecoRestaurante")
		mockService.AssertNotCalled(t, "Quote")
	})

	t.Run("Missing restaurant address", func(t *testing.T) {
		mockService := new(MockFreightService)
		handler := NewFreightHandler(mockService, logger)

		body := `{"enderecoCliente":"Rua A, 100"}`
		req := httptest.NewRequest(http.MethodPost, "/frete", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Quote")
	})

	t.Run("Invalid JSON body", func(t *testing.T) {
		mockService := new(MockFreightService)
		handler := NewFreightHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/frete", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unresolvable address surfaces diagnostic", func(t *testing.T) {
		mockService := new(MockFreightService)
		handler := NewFreightHandler(mockService, logger)

		mockService.On("Quote", mock.Anything, "xyzzy", "Av. B, 200").
			Return(nil, fmt.Errorf("%w: %q", geo.ErrAddressUnresolvable, "xyzzy"))

		body := `{"enderecoCliente":"xyzzy","enderecoRestaurante":"Av. B, 200"}`
		req := httptest.NewRequest(http.MethodPost, "/frete", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Quote(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var errResp model.ErrorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
		assert.Equal(t, "Não foi possível calcular o frete", errResp.Error)
		assert.Contains(t, errResp.Details, "xyzzy")
	})
}
