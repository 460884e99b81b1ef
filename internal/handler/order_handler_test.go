package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarmelo-delivery/internal/middleware"
	"sarmelo-delivery/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderRouter(h *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/pedidos", h.Create)
	r.Get("/pedidos", h.ListAll)
	r.Get("/pedidos/meus", h.MyOrders)
	r.Get("/pedidos/{id}", h.GetByID)
	r.Post("/pedidos/{id}/avancar", h.Advance)
	return r
}

func asCustomer(req *http.Request, userID int64) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), model.Identity{
		UserID: userID,
		Role:   model.RoleCustomer,
	}))
}

func TestOrderHandlerCreate(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Successful checkout", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		orderID := uuid.New()
		mockService.On("Create", mock.Anything, int64(42), mock.AnythingOfType("*model.OrderRequest")).
			Return(&model.OrderSummary{
				ID:       orderID,
				Subtotal: 35.00,
				Freight:  8.50,
				Total:    43.50,
				Status:   model.StatusReceived,
				Message:  "Pedido realizado com sucesso!",
			}, nil)

		body := `{"itens":[{"id":1,"qtd":2}],"endereco":"Rua A, 100","frete":8.5}`
		req := asCustomer(httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body)), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var summary model.OrderSummary
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
		assert.Equal(t, orderID, summary.ID)
		assert.Equal(t, 43.50, summary.Total)
		assert.Equal(t, "Pedido realizado com sucesso!", summary.Message)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid JSON body", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		req := asCustomer(httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString("{nope")), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Missing identity", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		body := `{"itens":[{"id":1,"qtd":1}],"endereco":"Rua A","frete":5}`
		req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Empty cart maps to 400", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("Create", mock.Anything, int64(42), mock.Anything).
			Return(nil, model.ErrEmptyCart)

		body := `{"itens":[],"endereco":"Rua A","frete":5}`
		req := asCustomer(httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body)), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Adicione itens ao carrinho")
	})

	t.Run("Unknown item maps to 400", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("Create", mock.Anything, int64(42), mock.Anything).
			Return(nil, model.ErrItemNotFound)

		body := `{"itens":[{"id":999,"qtd":1}],"endereco":"Rua A","frete":5}`
		req := asCustomer(httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBufferString(body)), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandlerGetByID(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	t.Run("Owner fetches own order", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		ident := model.Identity{UserID: 42, Role: model.RoleCustomer}
		mockService.On("GetByID", mock.Anything, orderID, ident).
			Return(&model.OrderDetail{
				Order: model.Order{ID: orderID, UserID: 42, Status: model.StatusReceived},
				Lines: []model.OrderLine{{ItemID: 1, Quantity: 2, UnitPrice: 10}},
			}, nil)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/"+orderID.String(), nil), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var detail model.OrderDetail
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
		assert.Equal(t, orderID, detail.ID)
		assert.Len(t, detail.Lines, 1)
	})

	t.Run("Malformed id", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/not-a-uuid", nil), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ID de pedido inválido")
		mockService.AssertNotCalled(t, "GetByID")
	})

	t.Run("Foreign order maps to 403", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, orderID, mock.Anything).
			Return(nil, model.ErrForbidden)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/"+orderID.String(), nil), 7)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Sem permissão")
	})

	t.Run("Unknown order maps to 404", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("GetByID", mock.Anything, orderID, mock.Anything).
			Return(nil, model.ErrOrderNotFound)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/"+orderID.String(), nil), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Pedido não encontrado")
	})
}

func TestOrderHandlerMyOrders(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Returns orders", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("ListByUser", mock.Anything, int64(42)).
			Return([]model.Order{{ID: uuid.New(), UserID: 42}}, nil)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/meus", nil), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var orders []model.Order
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
		assert.Len(t, orders, 1)
	})

	t.Run("No orders yields empty array", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("ListByUser", mock.Anything, int64(42)).Return(nil, nil)

		req := asCustomer(httptest.NewRequest(http.MethodGet, "/pedidos/meus", nil), 42)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestOrderHandlerAdvance(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	t.Run("Advances status", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("Advance", mock.Anything, orderID).
			Return(&model.StatusUpdate{
				ID:      orderID,
				Status:  model.StatusPreparing,
				Message: "Status atualizado para: Em preparo",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/"+orderID.String()+"/avancar", nil)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var update model.StatusUpdate
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&update))
		assert.Equal(t, model.StatusPreparing, update.Status)
	})

	t.Run("Unknown order maps to 404", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		mockService.On("Advance", mock.Anything, orderID).
			Return(nil, model.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/"+orderID.String()+"/avancar", nil)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		mockService := new(MockOrderService)
		handler := NewOrderHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/pedidos/xyz/avancar", nil)
		w := httptest.NewRecorder()

		newOrderRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Advance")
	})
}
