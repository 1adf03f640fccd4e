package immutable

import "fmt"

// check is the recursive verification core. The caller holds c.mu.
//
// obj may be nil when no instance is available for t; runtime-type
// checks are then skipped, everything else applies.
func (c *Checker) check(obj Object, t Type) *Violation {
	if c.skip(t) {
		return nil
	}
	if t.IsInterface() && !t.Marked() {
		return newViolation(fmt.Sprintf("interface '%s' is not marked immutable", t.Name()))
	}
	if !t.IsInterface() && !t.IsSealed() {
		return newViolation(fmt.Sprintf("class '%s' is not final", t.Name()))
	}
	if vio := c.fields(obj, t); vio != nil {
		return wrapViolation(fmt.Sprintf("class '%s' is mutable", t.Name()), vio)
	}
	c.proven[t.Key()] = struct{}{}
	c.logger.Debug("immutability proven", "type", t.Name())
	return nil
}

// skip reports whether t is treated as trivially immutable: built-in
// value types and types trusted by name, the introspection machinery's
// own types, and anything already proven.
func (c *Checker) skip(t Type) bool {
	if t == nil {
		return true
	}
	if t.IsPrimitive() {
		return true
	}
	if _, ok := c.trusted[t.Name()]; ok {
		return true
	}
	if t.Machinery() {
		return true
	}
	_, proven := c.proven[t.Key()]
	return proven
}

// fields verifies every non-static declared field of t. The first
// failure wins; there is no best-effort continuation.
func (c *Checker) fields(obj Object, t Type) *Violation {
	for _, f := range t.Fields() {
		if f.Static() {
			continue
		}
		// A reassignable field is a mutation vector even if what it
		// currently points to is immutable.
		if !f.Final() {
			return newViolation(fmt.Sprintf("field '%s' is not final", f.Name()))
		}
		if vio := c.field(obj, f, t); vio != nil {
			return wrapViolation(fmt.Sprintf("field '%s' is mutable", f.Name()), vio)
		}
	}
	return nil
}

// field verifies a single final, non-static field: its declared type,
// the runtime type of its current value when that differs, and the
// array-contents contract for array-like declared types.
func (c *Checker) field(obj Object, f Field, owner Type) *Violation {
	declared := f.Type()

	var value Object
	if obj != nil && !obj.IsNil() {
		read, err := f.Read(obj)
		if err != nil {
			return newViolation(fmt.Sprintf("field '%s' is not accessible", f.Name()))
		}
		value = read
	}

	// Declared type, unless it is the owner itself: a self-referential
	// declared type would otherwise recurse forever.
	if !identical(declared, owner) {
		inst := value
		if inst != nil && (inst.IsNil() || !identical(inst.Type(), declared)) {
			inst = nil
		}
		if vio := c.check(inst, declared); vio != nil {
			return vio
		}
	}

	// Runtime type, when the value holds something more specific than
	// declared. This closes the loophole of a field declared with an
	// immutable type actually holding an unverified subtype.
	if value != nil && !value.IsNil() && !identical(value.Type(), declared) {
		if vio := c.check(value, value.Type()); vio != nil {
			return vio
		}
	}

	if declared.IsArray() {
		if !f.ArrayContents() {
			return newViolation(fmt.Sprintf(
				"field '%s' is an array and not marked for immutable array contents", f.Name()))
		}
		if key := declared.MapKey(); key != nil {
			if vio := c.check(nil, key); vio != nil {
				return wrapViolation(fmt.Sprintf("map key type '%s' is mutable", key.Name()), vio)
			}
		}
		elem := declared.Elem()
		if vio := c.check(nil, elem); vio != nil {
			return wrapViolation(fmt.Sprintf("array component type '%s' is mutable", elem.Name()), vio)
		}
	}

	return nil
}

// identical compares two types by key.
func identical(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Key() == b.Key()
}
