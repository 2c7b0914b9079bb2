package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/account"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/feed"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/interfaces"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/models/events"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/settlement"
)

// App is the application facade: it owns the account directory and
// orchestrates payments, friendships and feed reads. The publisher is
// optional; when nil, no events are emitted.
type App struct {
	engine    *settlement.Engine
	publisher interfaces.EventPublisher

	mu       sync.Mutex
	accounts map[string]*account.Account
}

// ErrAccountNotFound reports a lookup for an identity the directory does not
// hold. Callers match it with errors.Is.
var ErrAccountNotFound = errors.New("account not found")

func New(engine *settlement.Engine, publisher interfaces.EventPublisher) *App {
	return &App{
		engine:    engine,
		publisher: publisher,
		accounts:  make(map[string]*account.Account),
	}
}

// CreateAccount registers a new account with an initial balance and an
// optional funding instrument (empty string for none). Identities are
// unique across the directory.
func (a *App) CreateAccount(identity string, balance decimal.Decimal, instrument string) (*account.Account, error) {
	acct, err := account.New(identity)
	if err != nil {
		return nil, err
	}
	if instrument != "" {
		if err := acct.LinkFundingInstrument(instrument); err != nil {
			return nil, err
		}
	}
	if err := acct.Credit(balance); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[identity]; exists {
		return nil, fmt.Errorf("account %q already exists", identity)
	}
	a.accounts[identity] = acct
	return acct, nil
}

// Account looks up an account by identity.
func (a *App) Account(identity string) (*account.Account, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acct, ok := a.accounts[identity]
	return acct, ok
}

// Pay transfers amount from one account to another with a memo, then emits
// one PaymentCompleted event per applied leg.
func (a *App) Pay(from, to string, amount decimal.Decimal, note string) error {
	payer, ok := a.Account(from)
	if !ok {
		return fmt.Errorf("unknown account %q: %w", from, ErrAccountNotFound)
	}
	payee, ok := a.Account(to)
	if !ok {
		return fmt.Errorf("unknown account %q: %w", to, ErrAccountNotFound)
	}

	legs, err := a.engine.Pay(payer, payee, amount, note)
	for _, leg := range legs {
		a.publish(events.TopicPaymentCompleted, events.PaymentCompleted{
			PaymentID:  leg.ID,
			Actor:      leg.Actor,
			Target:     leg.Target,
			Amount:     leg.Amount,
			Note:       leg.Note,
			OccurredAt: leg.CreatedAt,
		})
	}
	return err
}

// Befriend records a mutual friendship and emits a FriendshipCreated event
// when a new edge was created.
func (a *App) Befriend(identity, friend string) error {
	initiator, ok := a.Account(identity)
	if !ok {
		return fmt.Errorf("unknown account %q: %w", identity, ErrAccountNotFound)
	}
	other, ok := a.Account(friend)
	if !ok {
		return fmt.Errorf("unknown account %q: %w", friend, ErrAccountNotFound)
	}

	ev, created := a.engine.Befriend(initiator, other)
	if created {
		a.publish(events.TopicFriendshipCreated, events.FriendshipCreated{
			Actor:      ev.Actor,
			Target:     ev.Target,
			OccurredAt: ev.CreatedAt,
		})
	}
	return nil
}

// Feed returns the rendered activity feed of one account, oldest first.
func (a *App) Feed(identity string) ([]string, error) {
	acct, ok := a.Account(identity)
	if !ok {
		return nil, fmt.Errorf("unknown account %q: %w", identity, ErrAccountNotFound)
	}
	return feed.Render(acct.Feed()), nil
}

// publish emits an event if a publisher is configured. Publish failures are
// logged and never fail the triggering operation.
func (a *App) publish(topic string, event any) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(topic, event); err != nil {
		log.Printf("publish %s event: %v", topic, err)
	}
}
