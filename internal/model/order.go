package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a placed order. Monetary fields always satisfy
// total == round(subtotal + freight - discount, 2) and 0 <= discount <= subtotal.
// Only the status field changes after creation.
type Order struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Address    string    `json:"endereco" db:"endereco"`
	Status     Status    `json:"status" db:"status"`
	Subtotal   float64   `json:"subtotal" db:"subtotal"`
	Freight    float64   `json:"frete" db:"frete"`
	Discount   float64   `json:"desconto" db:"desconto"`
	Total      float64   `json:"total" db:"total"`
	CouponCode *string   `json:"cupom_usado" db:"cupom_usado"`
	CreatedAt  time.Time `json:"criado_em" db:"criado_em"`
}

// OrderLine is one menu item within an order. The unit price is captured at
// order time so historical orders are immune to later menu price changes.
type OrderLine struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"pedido_id"`
	ItemID    int64     `json:"item_id" db:"item_id"`
	Quantity  int       `json:"qtd" db:"qtd"`
	UnitPrice float64   `json:"preco_unit" db:"preco_unit"`

	// Display fields joined from the menu; not stored on the line itself.
	ItemName     string  `json:"nome,omitempty"`
	ItemImageURL *string `json:"imagem_url,omitempty"`
}

// CartLine is a client-submitted cart entry. The quantity is untrusted and
// floored to 1; the price is never taken from the client.
type CartLine struct {
	ItemID   int64 `json:"id"`
	Quantity int   `json:"qtd"`
}

// OrderRequest represents the checkout payload.
type OrderRequest struct {
	Items      []CartLine `json:"itens"`
	Address    string     `json:"endereco"`
	Freight    *float64   `json:"frete"`
	CouponCode *string    `json:"cupom"`
}

// OrderSummary is the response payload returned on order creation.
type OrderSummary struct {
	ID       uuid.UUID `json:"id"`
	Subtotal float64   `json:"subtotal"`
	Freight  float64   `json:"frete"`
	Discount float64   `json:"desconto"`
	Total    float64   `json:"total"`
	Status   Status    `json:"status"`
	Message  string    `json:"mensagem"`
}

// OrderDetail is an order together with its lines.
type OrderDetail struct {
	Order
	Lines []OrderLine `json:"itens"`
}

// StatusUpdate is the response payload of a status advancement.
type StatusUpdate struct {
	ID      uuid.UUID `json:"id"`
	Status  Status    `json:"status"`
	Message string    `json:"mensagem"`
}
