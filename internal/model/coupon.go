package model

import "time"

// CouponKind distinguishes how a coupon's value is interpreted.
type CouponKind string

const (
	// CouponPercentage discounts a percentage of the subtotal.
	CouponPercentage CouponKind = "percentual"
	// CouponFixed discounts a fixed currency amount.
	CouponFixed CouponKind = "fixo"
)

// Valid reports whether the kind is one of the supported values.
func (k CouponKind) Valid() bool {
	return k == CouponPercentage || k == CouponFixed
}

// Coupon represents a discount coupon. Codes are stored upper-cased and
// matched case-insensitively against only active coupons.
type Coupon struct {
	ID          int64      `json:"id" db:"id"`
	Code        string     `json:"codigo" db:"codigo"`
	Description string     `json:"descricao" db:"descricao"`
	Kind        CouponKind `json:"tipo" db:"tipo"`
	Value       float64    `json:"valor" db:"valor"`
	Minimum     float64    `json:"minimo" db:"minimo"`
	Active      bool       `json:"ativo" db:"ativo"`
	CreatedAt   time.Time  `json:"criado_em" db:"criado_em"`
}

// CouponRequest represents the payload for creating a coupon.
type CouponRequest struct {
	Code        string     `json:"codigo"`
	Description string     `json:"descricao"`
	Kind        CouponKind `json:"tipo"`
	Value       *float64   `json:"valor"`
	Minimum     float64    `json:"minimo"`
	Active      bool       `json:"ativo"`
}

// CouponSummary is the public view of a coupon returned by validation.
type CouponSummary struct {
	Code        string     `json:"codigo"`
	Description string     `json:"descricao"`
	Kind        CouponKind `json:"tipo"`
	Value       float64    `json:"valor"`
}

// CouponValidation is the response payload of the coupon pre-check.
type CouponValidation struct {
	Valid    bool          `json:"valido"`
	Coupon   CouponSummary `json:"cupom"`
	Discount float64       `json:"desconto"`
	Message  string        `json:"mensagem"`
}

// ValidateCouponRequest represents the payload for the coupon pre-check.
type ValidateCouponRequest struct {
	Code     string  `json:"codigo"`
	Subtotal float64 `json:"subtotal"`
}
