package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const viaCEPEndpoint = "https://viacep.com.br/ws"

// ErrCEPInvalid reports a postcode that is not 8 digits long.
var ErrCEPInvalid = errors.New("cep must have 8 digits")

// ErrCEPNotFound reports a well-formed postcode that ViaCEP does not know.
var ErrCEPNotFound = errors.New("cep not found")

// CEPAddress is the address registered for a Brazilian postcode.
type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// ViaCEP looks up Brazilian postcodes through the public ViaCEP API.
type ViaCEP struct {
	endpoint string
	client   *http.Client
}

// NewViaCEP creates a ViaCEP client.
func NewViaCEP() *ViaCEP {
	return &ViaCEP{
		endpoint: viaCEPEndpoint,
		client:   http.DefaultClient,
	}
}

// normalizeCEP strips everything but digits.
func normalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup resolves a postcode to its registered address. The input may carry
// punctuation ("01310-100"); anything that is not 8 digits after stripping
// fails with ErrCEPInvalid.
func (v *ViaCEP) Lookup(ctx context.Context, cep string) (*CEPAddress, error) {
	cep = normalizeCEP(cep)
	if len(cep) != 8 {
		return nil, ErrCEPInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", v.endpoint, cep), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build viacep request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	// ViaCEP signals an unknown postcode with {"erro": true} and status 200.
	var payload struct {
		CEPAddress
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode viacep response: %w", err)
	}

	if payload.Erro {
		return nil, ErrCEPNotFound
	}

	return &payload.CEPAddress, nil
}
