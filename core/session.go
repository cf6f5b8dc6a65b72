package core

import (
	"fmt"
	"sync"
	"time"
)

// Status enumerates the session state machine. Closed and WalkedAway are
// terminal; once reached no further offers may be appended.
type Status int

const (
	// StatusActive means the negotiation is still exchanging offers.
	StatusActive Status = iota
	// StatusClosed means a party accepted the counterpart's price.
	StatusClosed
	// StatusWalkedAway means a party terminated without a deal (including the
	// forced walk-away at the turn cap).
	StatusWalkedAway
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusClosed:
		return "closed"
	case StatusWalkedAway:
		return "walked_away"
	default:
		return "unknown"
	}
}

// Result is the immutable summary handed to callers, reporters and evaluators
// once a session terminates.
type Result struct {
	SessionID    string  `json:"session_id"`
	Outcome      Status  `json:"outcome"`
	ClosingPrice float64 `json:"closing_price,omitempty"`
	History      []Offer `json:"history"`
	TotalTurns   int     `json:"total_turns"`
}

// relative tolerance for price comparisons; keeps float arithmetic in
// strategies from tripping the limit checks.
const priceEpsilon = 1e-9

// Session is the negotiation state machine. It owns the full offer history and
// the terminal outcome, and is mutated only through Apply (or Stalemate at the
// turn cap). It is safe for concurrent access, though a single session is
// normally driven by one goroutine; independent sessions share nothing.
//
// Contract:
//   - Offers carry strictly increasing turn indices
//   - Apply on a terminal session fails with a ContractViolationError
//   - History returns a defensive copy so past records cannot be mutated
type Session struct {
	id           string
	cfg          Config
	history      []Offer
	status       Status
	closingPrice float64
	next         Party
	created      time.Time
	updated      time.Time
	mu           sync.RWMutex
}

// NewSession validates cfg and creates an active session with an empty history.
// The first mover from cfg takes the opening turn.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		id:      NewID(),
		cfg:     cfg,
		status:  StatusActive,
		next:    cfg.FirstMover,
		created: now,
		updated: now,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Status returns the current state machine status.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Active reports whether the session can still take turns.
func (s *Session) Active() bool { return s.Status() == StatusActive }

// NextParty returns the party whose decision is due.
func (s *Session) NextParty() Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}

// TotalTurns returns the number of offers appended so far.
func (s *Session) TotalTurns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// History returns a defensive copy of the full offer history.
func (s *Session) History() []Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.historyLocked()
}

// View builds the read-only context for the party whose turn is next. The
// embedded history is a copy and the limit is the acting party's own private
// constraint, never the counterpart's.
func (s *Session) View() Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Context{
		History: s.historyLocked(),
		Party:   s.next,
		Limit:   s.cfg.LimitFor(s.next),
		Turn:    len(s.history),
	}
}

// Apply advances the state machine with the acting party's decision. A Propose
// appends an offer and hands the turn to the counterpart; an Accept closes the
// session at the counterpart's standing price; a WalkAway terminates without a
// deal. Violations of the decision protocol (limit breaches, accepting a price
// nobody proposed, acting after a terminal state) abort with a
// ContractViolationError and leave the session unchanged.
func (s *Session) Apply(d Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	party := s.next
	if s.status != StatusActive {
		return &ContractViolationError{
			Party:  party,
			Reason: "decision returned after session reached " + s.status.String(),
			Err:    ErrTerminalSession,
		}
	}

	switch d.Action {
	case Propose:
		if d.Price <= 0 {
			return &ContractViolationError{Party: party, Reason: fmt.Sprintf("non-positive proposal %.2f", d.Price)}
		}
		limit := s.cfg.LimitFor(party)
		if party == Buyer && d.Price > limit*(1+priceEpsilon) {
			return &ContractViolationError{Party: party, Reason: fmt.Sprintf("proposal %.2f exceeds budget %.2f", d.Price, limit)}
		}
		if party == Seller && d.Price < limit*(1-priceEpsilon) {
			return &ContractViolationError{Party: party, Reason: fmt.Sprintf("proposal %.2f is below reserve %.2f", d.Price, limit)}
		}
		s.appendLocked(Offer{Party: party, Price: d.Price, Action: Propose})
		s.next = party.Rival()

	case Accept:
		standing, ok := s.latestRivalPriceLocked(party)
		if !ok {
			return &ContractViolationError{Party: party, Reason: "accept with no standing counterpart proposal"}
		}
		if !priceEqual(d.Price, standing) {
			return &ContractViolationError{Party: party, Reason: fmt.Sprintf("accept price %.2f does not match standing proposal %.2f", d.Price, standing)}
		}
		s.appendLocked(Offer{Party: party, Price: standing, Action: Accept})
		s.status = StatusClosed
		s.closingPrice = standing

	case WalkAway:
		s.appendLocked(Offer{Party: party, Action: WalkAway})
		s.status = StatusWalkedAway

	default:
		return &ContractViolationError{Party: party, Reason: fmt.Sprintf("unknown action %d", d.Action)}
	}

	return nil
}

// Stalemate resolves a session that hit its turn cap while still active as a
// forced walk-away. No offer is appended, so the history stays within the turn
// cap. This is a normal, expected terminal outcome, not an error condition.
func (s *Session) Stalemate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusActive {
		return ErrTerminalSession
	}
	s.status = StatusWalkedAway
	return nil
}

// Result snapshots the terminal (or in-flight) session into an immutable
// summary for reporters and evaluators.
func (s *Session) Result() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Result{
		SessionID:    s.id,
		Outcome:      s.status,
		ClosingPrice: s.closingPrice,
		History:      s.historyLocked(),
		TotalTurns:   len(s.history),
	}
}

// Clone returns a deep copy safe for independent use (e.g. by session stores).
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Session{
		id:           s.id,
		cfg:          s.cfg,
		history:      s.historyLocked(),
		status:       s.status,
		closingPrice: s.closingPrice,
		next:         s.next,
		created:      s.created,
		updated:      s.updated,
	}
}

// appendLocked stamps and appends an offer; caller must hold the write lock.
func (s *Session) appendLocked(o Offer) {
	o.Turn = len(s.history)
	o.Timestamp = time.Now().UTC()
	s.history = append(s.history, o)
	s.updated = time.Now()
}

func (s *Session) historyLocked() []Offer {
	history := make([]Offer, len(s.history))
	copy(history, s.history)
	return history
}

func (s *Session) latestRivalPriceLocked(party Party) (float64, bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		o := s.history[i]
		if o.Party == party.Rival() && o.Action == Propose {
			return o.Price, true
		}
	}
	return 0, false
}

func priceEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := b
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return diff <= scale*priceEpsilon
}

// SessionStore archives finished sessions for reporters and evaluators. A
// store never feeds information back into running negotiations.
type SessionStore interface {
	Save(s *Session) error
	Get(id string) (*Session, error)
	List() ([]*Session, error)
}
