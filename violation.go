package immutable

import (
	"errors"
	"strings"
)

// Violation is the single failure kind produced by verification.
//
// Each recursive failure wraps the inner one, forming a singly-linked
// causal chain from the originally requested type down to the exact
// offending field or type. A Violation has no identity beyond its
// message chain: it is raised, propagated, and discarded by the caller.
type Violation struct {
	msg   string
	cause *Violation
}

// newViolation creates a leaf Violation with no cause.
func newViolation(msg string) *Violation {
	return &Violation{msg: msg}
}

// wrapViolation creates a Violation that wraps an inner cause.
func wrapViolation(msg string, cause *Violation) *Violation {
	return &Violation{msg: msg, cause: cause}
}

// Error renders the full causal chain, outermost first, separated by ": ".
func (v *Violation) Error() string {
	var buf strings.Builder
	for link := v; link != nil; link = link.cause {
		if link != v {
			buf.WriteString(": ")
		}
		buf.WriteString(link.msg)
	}
	return buf.String()
}

// Message returns this link's own message, without the cause chain.
func (v *Violation) Message() string {
	return v.msg
}

// Cause returns the wrapped inner Violation, or nil at the chain's leaf.
func (v *Violation) Cause() *Violation {
	return v.cause
}

// Unwrap exposes the cause to errors.Is / errors.As traversal.
func (v *Violation) Unwrap() error {
	if v.cause == nil {
		return nil
	}
	return v.cause
}

// AsViolation extracts a *Violation from an error chain.
// Uses errors.As to handle wrapped errors.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
