package account

import "fmt"

// IdentityError reports a malformed account identity at creation time.
type IdentityError struct {
	Identity string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("invalid identity %q", e.Identity)
}

// InstrumentError reports a rejected funding instrument: either the number
// is malformed or the account already has an instrument linked.
type InstrumentError struct {
	Reason string
}

func (e *InstrumentError) Error() string {
	return e.Reason
}
