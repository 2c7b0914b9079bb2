package settlement

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/social-payments-feed-system/internal/account"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/interfaces"
	"github.com/sheikh-saqib/social-payments-feed-system/internal/models"
)

// Engine decides how to fund a payment and applies it to both accounts.
// It holds a per-account mutex map so that both parties stay locked for the
// duration of a whole pay or befriend call.
type Engine struct {
	charger interfaces.Charger     // collaborator that charges funding instruments
	muMap   map[string]*sync.Mutex // per-identity locks
	mapMu   sync.Mutex             // protects the muMap itself
}

// NewEngine creates an engine that charges instrument legs through the given
// charger.
func NewEngine(charger interfaces.Charger) *Engine {
	return &Engine{
		charger: charger,
		muMap:   make(map[string]*sync.Mutex),
	}
}

func (e *Engine) getAccountLock(identity string) *sync.Mutex {
	e.mapMu.Lock()
	defer e.mapMu.Unlock()

	if _, exists := e.muMap[identity]; !exists {
		e.muMap[identity] = &sync.Mutex{}
	}
	return e.muMap[identity]
}

// lockPair locks both identities' mutexes in a stable order to avoid
// deadlocks and returns the unlock function.
func (e *Engine) lockPair(a, b string) func() {
	first := e.getAccountLock(a)
	second := e.getAccountLock(b)

	if a < b {
		first.Lock()
		second.Lock()
	} else {
		second.Lock()
		first.Lock()
	}
	return func() {
		first.Unlock()
		second.Unlock()
	}
}

// Pay transfers amount from payer to payee, funded from the payer's balance
// first and the shortfall charged to the funding instrument:
//
//  1. balance >= amount: one leg, funded entirely from balance
//  2. 0 < balance < amount: a balance leg for the whole balance, then an
//     instrument leg for the remainder
//  3. balance <= 0: one leg, charged entirely to the instrument
//
// Each applied leg debits or charges the payer, credits the payee and
// appends one Payment record per side, so both feeds mirror the legs
// one-to-one. Legs are applied sequentially without rollback: if the balance
// leg of a split has been applied and the instrument leg then fails, the
// balance leg stays applied and the error is returned.
//
// The applied legs are returned in order.
func (e *Engine) Pay(payer, payee *account.Account, amount decimal.Decimal, note string) ([]models.Payment, error) {
	if payer.Identity() == payee.Identity() {
		return nil, &PaymentError{Reason: "cannot pay self"}
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, &PaymentError{Reason: "amount must be positive"}
	}

	unlock := e.lockPair(payer.Identity(), payee.Identity())
	defer unlock()

	balance := payer.Balance()
	switch {
	case balance.GreaterThanOrEqual(amount):
		leg, err := e.payWithBalance(payer, payee, amount, note)
		if err != nil {
			return nil, err
		}
		return []models.Payment{leg}, nil

	case balance.IsPositive():
		balanceLeg, err := e.payWithBalance(payer, payee, balance, note)
		if err != nil {
			return nil, err
		}
		remainder := amount.Sub(balance)
		instrumentLeg, err := e.payWithInstrument(payer, payee, remainder, note)
		if err != nil {
			// Balance leg already applied; no rollback.
			return []models.Payment{balanceLeg}, err
		}
		return []models.Payment{balanceLeg, instrumentLeg}, nil

	default:
		leg, err := e.payWithInstrument(payer, payee, amount, note)
		if err != nil {
			return nil, err
		}
		return []models.Payment{leg}, nil
	}
}

// payWithBalance applies one balance-funded leg. The caller has sized amount
// to fit, but the sufficiency check stays here as the single source of truth.
func (e *Engine) payWithBalance(payer, payee *account.Account, amount decimal.Decimal, note string) (models.Payment, error) {
	if payer.Balance().LessThan(amount) {
		return models.Payment{}, &PaymentError{Reason: "insufficient balance"}
	}

	payer.Debit(amount)
	return e.applyLeg(payer, payee, amount, note)
}

// payWithInstrument applies one instrument-funded leg.
func (e *Engine) payWithInstrument(payer, payee *account.Account, amount decimal.Decimal, note string) (models.Payment, error) {
	instrument, ok := payer.FundingInstrument()
	if !ok {
		return models.Payment{}, &PaymentError{Reason: "no funding instrument"}
	}

	if err := e.charger.Charge(instrument, amount); err != nil {
		return models.Payment{}, err
	}
	return e.applyLeg(payer, payee, amount, note)
}

// applyLeg credits the payee and records the leg in both feeds. Each side
// gets its own Payment record with the same leg amount.
func (e *Engine) applyLeg(payer, payee *account.Account, amount decimal.Decimal, note string) (models.Payment, error) {
	if err := payee.Credit(amount); err != nil {
		return models.Payment{}, err
	}

	leg := models.NewPayment(payer.Identity(), payee.Identity(), amount, note)
	payer.AppendFeed(leg)
	payee.AppendFeed(models.NewPayment(payer.Identity(), payee.Identity(), amount, note))
	return leg, nil
}

// Befriend records a mutual friendship between the two accounts, holding
// both locks for the whole update. Reports whether a new edge was created.
func (e *Engine) Befriend(initiator, other *account.Account) (models.Friendship, bool) {
	if initiator.Identity() == other.Identity() {
		return models.Friendship{}, false
	}

	unlock := e.lockPair(initiator.Identity(), other.Identity())
	defer unlock()

	return initiator.Befriend(other)
}
