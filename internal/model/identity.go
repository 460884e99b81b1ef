package model

// User roles as carried on requests. Session issuance lives outside this
// service; requests arrive already identified.
const (
	RoleCustomer   = "cliente"
	RoleRestaurant = "restaurante"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID int64
	Role   string
}
