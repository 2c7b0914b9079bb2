package account

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/models"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/validate"
)

// Account holds one user's mutable state: cash balance, optional funding
// instrument, friend set and activity feed. A single mutex guards all of it,
// so individual reads and writes are safe under concurrent access. Multi-step
// operations (read balance, then debit) are serialized by the settlement
// engine's per-account locks, held for the whole call.
type Account struct {
	identity string // immutable after creation

	mu         sync.Mutex
	balance    decimal.Decimal
	instrument string // empty until linked, immutable afterwards
	friends    map[string]struct{}
	feed       []models.FeedItem
}

// New creates an account with a zero balance, no instrument and no friends.
// Returns *IdentityError when the identity fails format validation.
func New(identity string) (*Account, error) {
	if !validate.Identity(identity) {
		return nil, &IdentityError{Identity: identity}
	}
	return &Account{
		identity: identity,
		balance:  decimal.Zero,
		friends:  make(map[string]struct{}),
	}, nil
}

// Identity returns the account's stable handle.
func (a *Account) Identity() string {
	return a.identity
}

// Balance returns the current cash balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// FundingInstrument returns the linked instrument, if any.
func (a *Account) FundingInstrument() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.instrument, a.instrument != ""
}

// LinkFundingInstrument links an external charge target to the account.
// At most one instrument may ever be linked; a second call always fails with
// *InstrumentError and never overwrites the first.
func (a *Account) LinkFundingInstrument(instrument string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.instrument != "" {
		return &InstrumentError{Reason: "funding instrument already linked"}
	}
	if !validate.Instrument(instrument) {
		return &InstrumentError{Reason: "invalid funding instrument"}
	}
	a.instrument = instrument
	return nil
}

// Credit increases the balance. The amount must not be negative; there is no
// upper bound.
func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.New("credit amount must not be negative")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return nil
}

// Debit decreases the balance. The caller must already have checked that
// amount <= balance; the settlement engine owns that check and it is not
// repeated here.
func (a *Account) Debit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Sub(amount)
}

// Befriend records a mutual friendship between a and other. If the edge
// already exists (or other is the account itself) it is a no-op. Otherwise
// both friend sets are updated and the single resulting Friendship record is
// appended to both feeds.
func (a *Account) Befriend(other *Account) (models.Friendship, bool) {
	if a.identity == other.identity {
		return models.Friendship{}, false
	}

	// Lock both sides in a stable order so the two-sided update is atomic.
	first, second := a, other
	if other.identity < a.identity {
		first, second = other, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if _, ok := a.friends[other.identity]; ok {
		return models.Friendship{}, false
	}

	a.friends[other.identity] = struct{}{}
	other.friends[a.identity] = struct{}{}

	ev := models.NewFriendship(a.identity, other.identity)
	a.feed = append(a.feed, ev)
	other.feed = append(other.feed, ev)
	return ev, true
}

// IsFriend reports whether the given identity is in the friend set.
func (a *Account) IsFriend(identity string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.friends[identity]
	return ok
}

// FriendCount returns the size of the friend set.
func (a *Account) FriendCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.friends)
}

// AppendFeed appends a ledger entity to the account's feed.
func (a *Account) AppendFeed(item models.FeedItem) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.feed = append(a.feed, item)
}

// Feed returns the account's feed in insertion order. The returned slice is
// a copy so callers cannot modify the feed.
func (a *Account) Feed() []models.FeedItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	copied := make([]models.FeedItem, len(a.feed))
	copy(copied, a.feed)
	return copied
}
