package interfaces

import "github.com/shopspring/decimal"

// Charger charges an amount against an external funding instrument.
// The shipped implementation always succeeds; a real processor would also
// surface declines here.
type Charger interface {
	Charge(instrument string, amount decimal.Decimal) error
}
