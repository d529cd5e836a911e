// Package tserr defines the error kinds shared across the toolkit so callers
// can errors.Is against a failure class instead of matching message text.
package tserr

import "errors"

// Kind identifies a class of recoverable error. Invariant violations inside
// curve arithmetic are not represented here: those are internal defects and
// panic instead of returning an error (see curve.mustOnCurve).
type Kind string

const (
	InvalidEncoding       Kind = "invalid_encoding"
	ChecksumMismatch      Kind = "checksum_mismatch"
	InvalidWIF            Kind = "invalid_wif"
	OutOfRange            Kind = "out_of_range"
	UnsupportedSighash    Kind = "unsupported_sighash"
	ThresholdMisconfigured Kind = "threshold_misconfigured"
	InsufficientShares    Kind = "insufficient_shares"
	NonInvertible         Kind = "non_invertible"
)

// Error wraps an underlying message with a Kind so sentinel comparisons via
// errors.Is survive wrapping by fmt.Errorf("%w", ...).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target is a *Error with the same Kind, or the bare Kind
// sentinel returned by Sentinel with an empty message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

// New builds an Error of the given kind with msg as its text.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Sentinel returns a zero-message Error usable as an errors.Is target, e.g.
// errors.Is(err, tserr.Sentinel(tserr.InvalidWIF)).
func Sentinel(kind Kind) error {
	return &Error{Kind: kind}
}
