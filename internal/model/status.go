package model

// Status represents an order's position in the delivery lifecycle.
type Status string

const (
	StatusReceived       Status = "Recebido"
	StatusPreparing      Status = "Em preparo"
	StatusOutForDelivery Status = "Saiu para entrega"
	StatusDelivered      Status = "Entregue"
)

// statusSequence is the fixed, linear delivery lifecycle. Orders only move
// forward through it; there are no backward transitions or cancellations.
var statusSequence = []Status{
	StatusReceived,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// InitialStatus returns the status assigned to a freshly created order.
func InitialStatus() Status {
	return statusSequence[0]
}

// Next returns the status that follows s in the delivery sequence.
// A status not found in the sequence, or already at the end, yields the
// terminal status: unknown states are treated as already delivered rather
// than rejected, so repeated advancement is always safe.
func (s Status) Next() Status {
	last := statusSequence[len(statusSequence)-1]
	for i, st := range statusSequence {
		if st == s && i < len(statusSequence)-1 {
			return statusSequence[i+1]
		}
	}
	return last
}

// Terminal reports whether s is the final status of the sequence.
func (s Status) Terminal() bool {
	return s == statusSequence[len(statusSequence)-1]
}
