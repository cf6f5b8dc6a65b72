package core

import (
	"errors"
	"fmt"
)

// ErrTerminalSession is returned when an operation is attempted on a session
// that has already reached Closed or WalkedAway.
var ErrTerminalSession = errors.New("session is terminal")

// ConfigError reports invalid session parameters. It is raised at session
// construction only, never mid-session.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// ContractViolationError reports a strategy breaking the decision protocol:
// proposing past its own limit, accepting a price nobody proposed, or acting
// on a terminal session. It indicates a broken strategy implementation, not a
// failed negotiation, and aborts the session without retry.
type ContractViolationError struct {
	Party  Party
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("strategy contract violation by %s: %s", e.Party, e.Reason)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *ContractViolationError) Unwrap() error { return e.Err }
