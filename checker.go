package immutable

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Checker proves types structurally immutable and remembers the proofs.
//
// The cache of proven types only grows; entries are never removed. All
// read-then-write sequences against it run under a single mutex, so one
// check-and-insert is atomic per top-level call tree and two goroutines
// never re-verify the same type concurrently. Checks happen at
// construction time, not on a hot path, and the cache keeps repeat
// costs near zero, so process-wide serialization is acceptable.
type Checker struct {
	mu      sync.Mutex
	proven  map[any]struct{}
	logger  *slog.Logger
	trusted map[string]struct{}
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for debug output on newly proven
// types. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithTrusted adds fully-qualified type names that are trusted by
// convention and skipped without inspection, in addition to the
// built-in set.
func WithTrusted(names ...string) Option {
	return func(c *Checker) {
		for _, name := range names {
			c.trusted[name] = struct{}{}
		}
	}
}

// defaultTrusted lists standard-library value types trusted by
// convention, the counterpart of trusting core-language types by name.
var defaultTrusted = []string{
	"time.Time",
}

// NewChecker creates a Checker with an empty cache.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		proven:  make(map[any]struct{}),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		trusted: make(map[string]struct{}),
	}
	for _, name := range defaultTrusted {
		c.trusted[name] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// std is the process-wide checker behind Check and MustCheck.
// Created once, never torn down.
var std = NewChecker()

// Verify checks v's most-derived concrete type and every type reachable
// from it through fields. It returns nil iff all of them satisfy the
// structural rules; otherwise a *Violation whose message chain
// identifies the exact offending field path.
//
// Safe to call concurrently with itself for arbitrary, possibly
// overlapping, sets of types.
func (c *Checker) Verify(v any) error {
	obj := objectOf(v)
	if obj.IsNil() {
		return newViolation("cannot verify a nil value")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if vio := c.check(obj, obj.Type()); vio != nil {
		return vio
	}
	return nil
}

// VerifyType checks a type with no instance at hand. Declared-type and
// array-element rules apply in full; runtime-type checks, which need a
// value to read, are vacuous. This is the entry point for descriptor
// sources that carry no instances, such as declarative type models.
func (c *Checker) VerifyType(t Type) error {
	if t == nil {
		return newViolation("cannot verify a nil type")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if vio := c.check(nil, t); vio != nil {
		return vio
	}
	return nil
}

// Check verifies v against the process-wide checker.
func Check(v any) error {
	return std.Verify(v)
}

// MustCheck verifies v against the process-wide checker and returns it,
// panicking on violation. Call it where construction finishes, in place
// of the implicit interception an annotation-driven runtime would do:
//
//	func NewPoint(x, y int) Point {
//		return immutable.MustCheck(Point{X: x, Y: y})
//	}
func MustCheck[T any](v T) T {
	if err := std.Verify(v); err != nil {
		panic(fmt.Sprintf("%T is not immutable, can't use it: %v", v, err))
	}
	return v
}
