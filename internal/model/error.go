package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"erro"`
	Details string `json:"detalhes,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON    = "INVALID_JSON"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeItemNotFound   = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound  = "ORDER_NOT_FOUND"
	ErrCodeCouponNotFound = "COUPON_NOT_FOUND"
	ErrCodeCouponMinimum  = "COUPON_MINIMUM_NOT_MET"
	ErrCodeCouponExists   = "COUPON_ALREADY_EXISTS"
	ErrCodeUnauthorised   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with a caller-facing message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewCouponMinimumError reports that the subtotal is below the coupon's
// inclusive qualifying minimum.
func NewCouponMinimumError(minimum float64) *DomainError {
	return NewDomainError(ErrCodeCouponMinimum,
		fmt.Sprintf("Cupom válido apenas para pedidos acima de R$ %.2f", minimum))
}

// Common domain errors
var (
	ErrEmptyCart      = NewValidationError("Adicione itens ao carrinho")
	ErrMissingAddress = NewValidationError("Informe o endereço de entrega")
	ErrInvalidFreight = NewValidationError("Calcule o frete primeiro")
	ErrItemNotFound   = NewDomainError(ErrCodeItemNotFound, "Um ou mais itens não foram encontrados")
	ErrOrderNotFound  = NewDomainError(ErrCodeOrderNotFound, "Pedido não encontrado")
	ErrCouponNotFound = NewDomainError(ErrCodeCouponNotFound, "Cupom inválido ou inativo")
	ErrCouponExists   = NewDomainError(ErrCodeCouponExists, "Código de cupom já existe")
	ErrForbidden      = NewDomainError(ErrCodeForbidden, "Sem permissão")
)
