package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Next_VisitsSequenceInOrder(t *testing.T) {
	s := InitialStatus()
	assert.Equal(t, StatusReceived, s)

	s = s.Next()
	assert.Equal(t, StatusPreparing, s)

	s = s.Next()
	assert.Equal(t, StatusOutForDelivery, s)

	s = s.Next()
	assert.Equal(t, StatusDelivered, s)
}

func TestStatus_Next_TerminalIsIdempotent(t *testing.T) {
	s := StatusDelivered
	for i := 0; i < 3; i++ {
		s = s.Next()
		assert.Equal(t, StatusDelivered, s)
	}
}

func TestStatus_Next_UnknownStatusClampsToTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status Status
	}{
		{name: "Empty status", status: Status("")},
		{name: "Unrecognised status", status: Status("Cancelado")},
		{name: "Case mismatch", status: Status("recebido")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, StatusDelivered, tt.status.Next())
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusReceived.Terminal())
	assert.False(t, StatusOutForDelivery.Terminal())
	assert.True(t, StatusDelivered.Terminal())
}
