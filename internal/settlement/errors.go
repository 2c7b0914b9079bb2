package settlement

// PaymentError reports a rejected payment: self-payment, a non-positive
// amount, or a missing funding instrument for an instrument-funded leg.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return e.Reason
}
