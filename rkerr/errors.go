// Package rkerr defines the typed error kinds the driver surfaces to
// callers (§7 of the governing specification): InvalidDomain, Timeout,
// DependencyNotMet, and Unsupported. Every layer of the driver — chip
// lookup, the sequencer, the dependency manager, the facade — wraps its
// failures in an *Error so a caller can branch on kind with errors.Is
// without parsing message text.
package rkerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Compare with errors.Is(err, rkerr.Timeout), etc.
var (
	InvalidDomain    = errors.New("invalid domain")
	Timeout          = errors.New("poll timed out")
	DependencyNotMet = errors.New("dependency not met")
	Unsupported      = errors.New("unsupported operation")
)

// Error identifies the sub-stage that failed and wraps the underlying
// cause. Op names the failing sub-stage (e.g. "power-on:main-power",
// "power-off-with-deps:child-active"); Domain is the domain the caller
// targeted.
type Error struct {
	Kind   error
	Op     string
	Domain uint16
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil && e.Cause != e.Kind {
		return fmt.Sprintf("rkpower: %s (domain %d): %v: %v", e.Op, e.Domain, e.Kind, e.Cause)
	}
	return fmt.Sprintf("rkpower: %s (domain %d): %v", e.Op, e.Domain, e.Kind)
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is lets errors.Is(err, rkerr.Timeout) match without unwrapping all the
// way to Cause when Cause itself doesn't chain back to Kind (e.g. Cause is
// a *chip.ErrInvalidDomain that has no Is/sentinel relationship to
// rkerr.InvalidDomain).
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// New constructs an *Error for kind failing at op against domain, wrapping
// cause for detail (cause may be nil).
func New(kind error, op string, domain uint16, cause error) *Error {
	return &Error{Kind: kind, Op: op, Domain: domain, Cause: cause}
}
