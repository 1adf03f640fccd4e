package immutable

// Type is an opaque handle to a type in some type system.
//
// The rule engine consumes types only through this interface, so the
// same rules apply to live Go types (reflect source, this package) and
// to declarative type models (the model subpackage). Implementations
// are read-only views; the engine never constructs or mutates them.
type Type interface {
	// Name returns the fully-qualified type name, used in diagnostics.
	Name() string

	// Key returns a comparable identity for this type. Two Type values
	// describe the same type iff their keys are equal. Keys index the
	// proven-immutable cache and guard direct self-recursion.
	Key() any

	// IsInterface reports whether the type is an interface.
	IsInterface() bool

	// IsPrimitive reports whether the type is a built-in value type,
	// trusted by convention and never walked.
	IsPrimitive() bool

	// IsSealed reports whether the type is declared non-extensible.
	// Non-sealed concrete types fail verification outright: an open type
	// could be extended with mutable state, invalidating any proof made
	// about the declared type.
	IsSealed() bool

	// Marked reports whether the type carries the immutability-contract
	// marker. Required for interfaces; optional for concrete types.
	Marked() bool

	// IsArray reports whether the type is an array-like container whose
	// backing storage is mutable regardless of field finality.
	IsArray() bool

	// Elem returns the element type of an array-like type, nil otherwise.
	// For maps this is the value type.
	Elem() Type

	// MapKey returns the key type of a map, nil for every other type.
	// Map keys are verified alongside elements under the array rules.
	MapKey() Type

	// Fields returns the type's declared fields. Nil for interfaces,
	// primitives, and array-like types.
	Fields() []Field

	// Machinery reports whether the type belongs to the introspection
	// machinery itself. Such types are skipped to avoid recursing into
	// the verifier's own support types.
	Machinery() bool
}

// Field is a single declared field of a Type.
type Field interface {
	// Name returns the field name as declared.
	Name() string

	// Type returns the field's declared type.
	Type() Type

	// Static reports whether the field carries no per-instance state
	// (marker and blank fields). Static fields are excluded from checks.
	Static() bool

	// Final reports whether the field is declared non-reassignable.
	Final() bool

	// ArrayContents reports whether the field carries the marker
	// asserting that its array contents are immutable.
	ArrayContents() bool

	// Read returns the field's current value from the given instance.
	// A non-nil error means the value cannot be read; verification
	// treats that as a hard failure, not a warning.
	Read(obj Object) (Object, error)
}

// Object is a value under verification. It exposes only what the engine
// needs: nil-ness and the most-derived runtime type.
type Object interface {
	// IsNil reports whether the value is absent.
	IsNil() bool

	// Type returns the value's concrete runtime type.
	Type() Type
}
