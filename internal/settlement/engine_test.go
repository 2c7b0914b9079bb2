package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/account"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/models"
)

// chargeRecorder captures instrument charges so tests can assert exactly
// what was charged.
type chargeRecorder struct {
	instruments []string
	amounts     []decimal.Decimal
}

func (c *chargeRecorder) Charge(instrument string, amount decimal.Decimal) error {
	c.instruments = append(c.instruments, instrument)
	c.amounts = append(c.amounts, amount)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newAccount(t *testing.T, identity, balance, instrument string) *account.Account {
	t.Helper()
	acct, err := account.New(identity)
	require.NoError(t, err)
	require.NoError(t, acct.Credit(dec(balance)))
	if instrument != "" {
		require.NoError(t, acct.LinkFundingInstrument(instrument))
	}
	return acct
}

func paymentAmounts(t *testing.T, items []models.FeedItem) []decimal.Decimal {
	t.Helper()
	var amounts []decimal.Decimal
	for _, item := range items {
		p, ok := item.(models.Payment)
		require.True(t, ok, "expected a payment record, got %T", item)
		amounts = append(amounts, p.Amount)
	}
	return amounts
}

func TestPayFundedEntirelyFromBalance(t *testing.T) {
	charger := &chargeRecorder{}
	engine := NewEngine(charger)
	payer := newAccount(t, "alice123", "20.00", "4111111111111111")
	payee := newAccount(t, "bob12345", "0", "")

	legs, err := engine.Pay(payer, payee, dec("12.50"), "Dinner")
	require.NoError(t, err)

	require.Len(t, legs, 1)
	assert.True(t, legs[0].Amount.Equal(dec("12.50")))
	assert.True(t, payer.Balance().Equal(dec("7.50")))
	assert.True(t, payee.Balance().Equal(dec("12.50")))
	assert.Empty(t, charger.instruments, "no instrument leg expected")

	require.Len(t, payer.Feed(), 1)
	require.Len(t, payee.Feed(), 1)
}

func TestPaySplitAcrossBalanceAndInstrument(t *testing.T) {
	charger := &chargeRecorder{}
	engine := NewEngine(charger)
	payer := newAccount(t, "alice123", "4.00", "4111111111111111")
	payee := newAccount(t, "bob12345", "0", "")

	legs, err := engine.Pay(payer, payee, dec("10.00"), "Tickets")
	require.NoError(t, err)

	// Balance leg first, instrument leg second.
	require.Len(t, legs, 2)
	assert.True(t, legs[0].Amount.Equal(dec("4.00")))
	assert.True(t, legs[1].Amount.Equal(dec("6.00")))

	assert.True(t, payer.Balance().IsZero())
	assert.True(t, payee.Balance().Equal(dec("10.00")))

	require.Len(t, charger.instruments, 1)
	assert.Equal(t, "4111111111111111", charger.instruments[0])
	assert.True(t, charger.amounts[0].Equal(dec("6.00")))

	// Both feeds mirror the two legs, with the balance leg first.
	for _, feed := range [][]models.FeedItem{payer.Feed(), payee.Feed()} {
		amounts := paymentAmounts(t, feed)
		require.Len(t, amounts, 2)
		assert.True(t, amounts[0].Equal(dec("4.00")))
		assert.True(t, amounts[1].Equal(dec("6.00")))
	}
}

func TestPayFundedEntirelyFromInstrument(t *testing.T) {
	charger := &chargeRecorder{}
	engine := NewEngine(charger)
	payer := newAccount(t, "alice123", "0", "4242424242424242")
	payee := newAccount(t, "bob12345", "3.00", "")

	legs, err := engine.Pay(payer, payee, dec("9.99"), "Books")
	require.NoError(t, err)

	require.Len(t, legs, 1)
	assert.True(t, payer.Balance().IsZero(), "instrument-funded payment leaves balance unchanged")
	assert.True(t, payee.Balance().Equal(dec("12.99")))

	require.Len(t, charger.amounts, 1)
	assert.True(t, charger.amounts[0].Equal(dec("9.99")))
}

func TestPayRejectsSelfPayment(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	acct := newAccount(t, "alice123", "100", "4111111111111111")

	_, err := engine.Pay(acct, acct, dec("10"), "nope")

	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "cannot pay self", payErr.Reason)
	assert.True(t, acct.Balance().Equal(dec("100")))
	assert.Empty(t, acct.Feed())
}

func TestPayRejectsNonPositiveAmounts(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	payer := newAccount(t, "alice123", "100", "4111111111111111")
	payee := newAccount(t, "bob12345", "0", "")

	for _, amount := range []string{"0", "-10.00"} {
		_, err := engine.Pay(payer, payee, dec(amount), "nope")

		var payErr *PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, "amount must be positive", payErr.Reason)
	}
	assert.True(t, payer.Balance().Equal(dec("100")))
	assert.True(t, payee.Balance().IsZero())
}

func TestPayWithoutInstrumentOrBalanceFails(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	payer := newAccount(t, "alice123", "0", "")
	payee := newAccount(t, "bob12345", "0", "")

	_, err := engine.Pay(payer, payee, dec("10"), "nope")

	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "no funding instrument", payErr.Reason)
	assert.Empty(t, payer.Feed())
	assert.Empty(t, payee.Feed())
}

// A split whose instrument leg fails leaves the balance leg applied. That is
// the documented sequential-apply behavior, not a rollback bug.
func TestPaySplitWithoutInstrumentKeepsBalanceLeg(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	payer := newAccount(t, "alice123", "5.00", "")
	payee := newAccount(t, "bob12345", "0", "")

	legs, err := engine.Pay(payer, payee, dec("10.00"), "Groceries")

	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "no funding instrument", payErr.Reason)

	require.Len(t, legs, 1)
	assert.True(t, legs[0].Amount.Equal(dec("5.00")))
	assert.True(t, payer.Balance().IsZero())
	assert.True(t, payee.Balance().Equal(dec("5.00")))
	assert.Len(t, payer.Feed(), 1)
	assert.Len(t, payee.Feed(), 1)
}

// payWithBalance keeps its own sufficiency check as the single source of
// truth, even though Pay always sizes the leg to fit.
func TestPayWithBalanceRejectsOversizedLeg(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	payer := newAccount(t, "alice123", "3.00", "")
	payee := newAccount(t, "bob12345", "0", "")

	_, err := engine.payWithBalance(payer, payee, dec("5.00"), "nope")

	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, "insufficient balance", payErr.Reason)

	// Nothing was applied.
	assert.True(t, payer.Balance().Equal(dec("3.00")))
	assert.True(t, payee.Balance().IsZero())
	assert.Empty(t, payer.Feed())
	assert.Empty(t, payee.Feed())
}

func TestBefriendHoldsBothSidesAndIsIdempotent(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	a := newAccount(t, "alice123", "0", "")
	b := newAccount(t, "bob12345", "0", "")

	_, created := engine.Befriend(a, b)
	require.True(t, created)
	_, created = engine.Befriend(b, a)
	assert.False(t, created)

	assert.Equal(t, 1, a.FriendCount())
	assert.Equal(t, 1, b.FriendCount())
	assert.Len(t, a.Feed(), 1)
	assert.Len(t, b.Feed(), 1)
}

func TestBefriendSelf(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	a := newAccount(t, "alice123", "0", "")

	_, created := engine.Befriend(a, a)
	assert.False(t, created)
}

func TestPaymentRecordsCarryOrderingStamps(t *testing.T) {
	engine := NewEngine(&chargeRecorder{})
	payer := newAccount(t, "alice123", "4.00", "4111111111111111")
	payee := newAccount(t, "bob12345", "0", "")

	legs, err := engine.Pay(payer, payee, dec("10.00"), "Tickets")
	require.NoError(t, err)
	require.Len(t, legs, 2)

	assert.NotEmpty(t, legs[0].ID)
	assert.NotEqual(t, legs[0].ID, legs[1].ID)
	assert.Less(t, legs[0].Seq(), legs[1].Seq())
	assert.False(t, legs[0].OccurredAt().IsZero())
}
