package router

import (
	"net/http"

	"sarmelo-delivery/internal/handler"
	"sarmelo-delivery/internal/middleware"
	"sarmelo-delivery/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers wired by New.
type Handlers struct {
	Menu    *handler.MenuHandler
	CEP     *handler.CEPHandler
	Freight *handler.FreightHandler
	Coupon  *handler.CouponHandler
	Order   *handler.OrderHandler
}

// New builds the application router with middleware and route guards.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Identity(logger))

	customer := middleware.RequireRole(model.RoleCustomer, logger)
	restaurant := middleware.RequireRole(model.RoleRestaurant, logger)

	// Public routes
	r.Get("/ping", handler.Ping)
	r.Get("/menu", h.Menu.List)
	r.Get("/viacep/{cep}", h.CEP.Lookup)
	r.Post("/frete", h.Freight.Quote)

	// Customer routes
	r.With(customer).Post("/cupons/validar", h.Coupon.Validate)
	r.With(customer).Post("/pedidos", h.Order.Create)
	r.With(customer).Get("/pedidos/meus", h.Order.MyOrders)

	// Restaurant routes
	r.With(restaurant).Get("/cupons", h.Coupon.List)
	r.With(restaurant).Post("/cupons", h.Coupon.Create)
	r.With(restaurant).Delete("/cupons/{id}", h.Coupon.Delete)
	r.With(restaurant).Get("/pedidos", h.Order.ListAll)
	r.With(restaurant).Post("/pedidos/{id}/avancar", h.Order.Advance)

	// Any authenticated caller; the service enforces ownership.
	r.With(middleware.RequireIdentity(logger)).Get("/pedidos/{id}", h.Order.GetByID)

	return r
}
