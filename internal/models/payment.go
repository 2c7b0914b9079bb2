package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is an immutable record of one funding-source leg of a payment.
// A single user-level pay call can produce two of these (balance leg plus
// instrument leg) when the balance only covers part of the amount.
type Payment struct {
	ID        string          // unique identifier
	Actor     string          // identity of the payer
	Target    string          // identity of the payee
	Amount    decimal.Decimal // leg amount, always positive
	Note      string          // free-text memo
	Sequence  uint64          // process-wide creation order
	CreatedAt time.Time       // timestamp
}

// NewPayment creates a payment record stamped with a fresh id, sequence
// number and timestamp.
func NewPayment(actor, target string, amount decimal.Decimal, note string) Payment {
	return Payment{
		ID:        uuid.New().String(),
		Actor:     actor,
		Target:    target,
		Amount:    amount,
		Note:      note,
		Sequence:  nextSeq(),
		CreatedAt: time.Now(),
	}
}

func (p Payment) Seq() uint64           { return p.Sequence }
func (p Payment) OccurredAt() time.Time { return p.CreatedAt }
