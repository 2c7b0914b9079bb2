package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topic names for the domain events this system emits.
const (
	TopicPaymentCompleted  = "payment_completed"
	TopicFriendshipCreated = "friendship_created"
)

type PaymentCompleted struct {
	PaymentID  string          `json:"payment_id"`
	Actor      string          `json:"actor"`
	Target     string          `json:"target"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
	OccurredAt time.Time       `json:"occurred_at"`
}
