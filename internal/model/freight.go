package model

// FreightRequest represents the payload for a freight calculation.
type FreightRequest struct {
	CustomerAddress   string `json:"enderecoCliente"`
	RestaurantAddress string `json:"enderecoRestaurante"`
}

// FreightQuote is the response payload of a freight calculation. Source names
// the geocoding provider that resolved the customer address, so clients can
// tell when a fallback provider (with degraded accuracy) answered.
type FreightQuote struct {
	Km     float64 `json:"km"`
	Fee    float64 `json:"frete"`
	Source string  `json:"fonte"`
	Note   string  `json:"observacao"`
}
