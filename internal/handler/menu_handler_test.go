package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarmelo-delivery/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuHandlerList(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Returns menu items", func(t *testing.T) {
		mockService := new(MockMenuService)
		handler := NewMenuHandler(mockService, logger)

		mockService.On("List", mock.Anything).Return([]model.MenuItem{
			{ID: 1, Category: "Pizzas", Name: "Margherita", Price: 39.90, Available: true},
			{ID: 2, Category: "Bebidas", Name: "Refrigerante Lata", Price: 6.50, Available: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var items []model.MenuItem
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&items))
		assert.Len(t, items, 2)
		assert.Equal(t, "Margherita", items[0].Name)
		mockService.AssertExpectations(t)
	})

	t.Run("Empty menu yields empty array", func(t *testing.T) {
		mockService := new(MockMenuService)
		handler := NewMenuHandler(mockService, logger)

		mockService.On("List", mock.Anything).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("Service failure yields opaque 500", func(t *testing.T) {
		mockService := new(MockMenuService)
		handler := NewMenuHandler(mockService, logger)

		mockService.On("List", mock.Anything).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Erro no servidor")
	})
}

func TestPing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["time"])
}
