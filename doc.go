// Package immutable verifies, at construction time, that a value's entire
// reachable field graph is structurally immutable according to a declared
// contract.
//
// A type claims the contract by embedding Marker (structs) or Contract
// (interfaces). Verification walks the declared type and every type
// reachable through its fields and enforces three rules:
//
//   - interfaces must carry the contract marker
//   - concrete types must be declared sealed (embed Final)
//   - every field must be declared final and its declared AND runtime
//     types must themselves verify
//
// Array-like fields (slices, arrays, maps) additionally require an
// explicit "contents" marker, since their backing storage is mutable
// regardless of field finality. Map fields verify their key type
// alongside the value type.
//
// # Usage
//
// Call MustCheck at the end of a constructor, where an annotation-driven
// language would intercept construction:
//
//	type Point struct {
//		immutable.Marker
//		immutable.Final
//
//		X int `immutable:"final"`
//		Y int `immutable:"final"`
//	}
//
//	func NewPoint(x, y int) Point {
//		return immutable.MustCheck(Point{X: x, Y: y})
//	}
//
// MustCheck panics on the first violation; Check returns it as an error.
// The failure is a *Violation whose message reads as a causal path from
// the root type down to the offending field:
//
//	class 'pkg.Box' is mutable: field 'Contents' is mutable: class 'pkg.MutableThing' is not final
//
// # Field markers
//
// Field-level declarations use the `immutable` struct tag:
//
//	Name string   `immutable:"final"`          // non-reassignable field
//	Tags []string `immutable:"final,contents"` // final + contents asserted immutable
//
// The contents option is a developer assertion checked at the element-type
// level only; it is not proof that the backing array cannot be written.
//
// # Caching and concurrency
//
// Types that pass verification are cached for the life of the Checker, so
// repeat checks are near-free. A single mutex serializes the whole
// check-and-insert path; checks happen at construction time, not on a hot
// path, so process-wide serialization is acceptable.
//
// # Descriptor sources
//
// The rule engine consumes only the Type, Field, and Object capability
// interfaces. The default source is reflection over live Go values; the
// model subpackage provides a second source parsed from declarative YAML
// type models, used by the CLI for static checking.
package immutable
