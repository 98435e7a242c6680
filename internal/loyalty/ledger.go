// Package loyalty keeps the GreenPoints ledger: an append-only record of
// points earned by each shopper.
package loyalty

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/greencart/internal/logging"
)

// DefaultStartingBalance is credited to every new shopper as a signup bonus.
const DefaultStartingBalance = 140

type constError string

func (e constError) Error() string { return string(e) }

// Ledger errors.
const (
	ErrInvalidPoints = constError("points must be positive")
	ErrInvalidUser   = constError("user ID is required")
	ErrUnknownAction = constError("unknown loyalty action")
)

// Action is the reason points were earned.
type Action string

// Ledger actions.
const (
	ActionSwap        Action = "swap"
	ActionEcoDelivery Action = "eco_delivery"
	ActionSignupBonus Action = "signup_bonus"
)

func (a Action) valid() bool {
	switch a {
	case ActionSwap, ActionEcoDelivery, ActionSignupBonus:
		return true
	}
	return false
}

// Entry is one ledger line.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Points    int       `json:"points"`
	Action    Action    `json:"actionType"`
	ProductID string    `json:"productId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ledger is an in-memory, append-only points ledger, safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries []Entry
	known   map[string]bool

	startingBalance int
	now             func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithStartingBalance sets the signup bonus. Zero disables it.
func WithStartingBalance(points int) Option {
	return func(l *Ledger) { l.startingBalance = points }
}

// WithClock replaces the time source used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		known:           make(map[string]bool),
		startingBalance: DefaultStartingBalance,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Award credits points to userID. productID may be empty.
func (l *Ledger) Award(ctx context.Context, userID string, points int, action Action, productID string) (Entry, error) {
	switch {
	case userID == "":
		return Entry{}, ErrInvalidUser
	case points <= 0:
		return Entry{}, fmt.Errorf("%w: got %d", ErrInvalidPoints, points)
	case !action.valid():
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	l.mu.Lock()
	l.enrolLocked(userID)
	e := l.appendLocked(userID, points, action, productID)
	l.mu.Unlock()

	logging.FromContext(ctx).Info().
		Str("user_id", userID).
		Int("points", points).
		Str("action", string(action)).
		Str("product_id", productID).
		Msg("green points awarded")
	return e, nil
}

// Balance returns the user's total points, enrolling them if new.
func (l *Ledger) Balance(userID string) int {
	l.enrol(userID)

	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, e := range l.entries {
		if e.UserID == userID {
			total += e.Points
		}
	}
	return total
}

// History returns the user's entries, oldest first.
func (l *Ledger) History(userID string) []Entry {
	l.enrol(userID)

	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Entry
	for _, e := range l.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (l *Ledger) enrol(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enrolLocked(userID)
}

// enrolLocked records the signup bonus the first time a user is seen.
func (l *Ledger) enrolLocked(userID string) {
	if userID == "" || l.known[userID] {
		return
	}
	l.known[userID] = true
	if l.startingBalance > 0 {
		l.appendLocked(userID, l.startingBalance, ActionSignupBonus, "")
	}
}

func (l *Ledger) appendLocked(userID string, points int, action Action, productID string) Entry {
	e := Entry{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Points:    points,
		Action:    action,
		ProductID: productID,
		CreatedAt: l.now().UTC(),
	}
	l.entries = append(l.entries, e)
	return e
}
