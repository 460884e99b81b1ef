package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "No rounding needed", input: 25.00, expected: 25.00},
		{name: "Rounds down", input: 10.004, expected: 10.00},
		{name: "Half rounds away from zero", input: 10.005, expected: 10.01},
		{name: "Negative half rounds away from zero", input: -10.005, expected: -10.01},
		{name: "Float artifacts collapse", input: 0.1 + 0.2, expected: 0.3},
		{name: "Long tail", input: 4.999999, expected: 5.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.input), 1e-9)
		})
	}
}

func TestRound1(t *testing.T) {
	assert.InDelta(t, 12.3, Round1(12.34), 1e-9)
	assert.InDelta(t, 12.4, Round1(12.35), 1e-9)
	assert.InDelta(t, 0.0, Round1(0.04), 1e-9)
}
