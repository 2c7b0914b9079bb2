package charge

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/interfaces"
)

// Processor is the card processor behind instrument-funded payment legs.
// Charges in this version always succeed; declines are not modeled.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

func (p *Processor) Charge(instrument string, amount decimal.Decimal) error {
	return nil
}

var _ interfaces.Charger = (*Processor)(nil)
