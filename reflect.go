package immutable

import (
	"fmt"
	"reflect"
	"strings"
)

// selfPkg is this package's import path, part of the machinery skip set.
var selfPkg = reflect.TypeOf(Marker{}).PkgPath()

var (
	contractIface = reflect.TypeOf((*Contract)(nil)).Elem()
	sealedIface   = reflect.TypeOf((*sealedContract)(nil)).Elem()
	markerStruct  = reflect.TypeOf(Marker{})
	finalStruct   = reflect.TypeOf(Final{})
)

// typeOf wraps a reflect.Type as a Type descriptor.
//
// Pointer types are transparent: a pointer is a mutation vector only
// via reassignment, which the field finality rule already covers, so
// descriptors always describe the pointee.
func typeOf(rt reflect.Type) reflectType {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return reflectType{rt: rt}
}

// objectOf wraps a live Go value for verification.
func objectOf(v any) reflectObject {
	return reflectObject{rv: reflect.ValueOf(v)}
}

// reflectType implements Type over the Go runtime type system.
type reflectType struct {
	rt reflect.Type
}

// Name returns the fully-qualified name, e.g. "time.Time" or
// "github.com/acme/geo.Point". Unnamed types use Go syntax.
func (t reflectType) Name() string {
	if t.rt.Name() != "" && t.rt.PkgPath() != "" {
		return t.rt.PkgPath() + "." + t.rt.Name()
	}
	return t.rt.String()
}

func (t reflectType) Key() any {
	return t.rt
}

func (t reflectType) IsInterface() bool {
	return t.rt.Kind() == reflect.Interface
}

func (t reflectType) IsPrimitive() bool {
	switch t.rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}

// IsSealed reports the non-extensibility declaration. Array-like shells
// are sealed the way array classes are final in class-based runtimes:
// the element rules apply at the field level instead. Channels and
// functions are inherently mutable conduits and are never sealed.
func (t reflectType) IsSealed() bool {
	switch t.rt.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false
	}
	return t.rt.Implements(sealedIface)
}

func (t reflectType) Marked() bool {
	return t.rt.Implements(contractIface)
}

// IsArray groups the container kinds whose backing storage stays
// mutable no matter how the field is declared: slices, fixed arrays,
// and maps.
func (t reflectType) IsArray() bool {
	switch t.rt.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func (t reflectType) Elem() Type {
	if !t.IsArray() {
		return nil
	}
	return typeOf(t.rt.Elem())
}

func (t reflectType) MapKey() Type {
	if t.rt.Kind() != reflect.Map {
		return nil
	}
	return typeOf(t.rt.Key())
}

func (t reflectType) Fields() []Field {
	if t.rt.Kind() != reflect.Struct {
		return nil
	}
	fields := make([]Field, 0, t.rt.NumField())
	for i := 0; i < t.rt.NumField(); i++ {
		fields = append(fields, reflectField{owner: t.rt, sf: t.rt.Field(i), index: i})
	}
	return fields
}

// Machinery skips the verifier's own marker types and the reflect
// package, so recursion never descends into introspection support.
func (t reflectType) Machinery() bool {
	pkg := t.rt.PkgPath()
	return pkg == selfPkg || pkg == "reflect"
}

// reflectField implements Field over reflect.StructField.
type reflectField struct {
	owner reflect.Type
	sf    reflect.StructField
	index int
}

func (f reflectField) Name() string {
	return f.sf.Name
}

func (f reflectField) Type() Type {
	return typeOf(f.sf.Type)
}

// Static marks the fields that carry no per-instance state: blank
// fields and the embedded contract markers.
func (f reflectField) Static() bool {
	if f.sf.Name == "_" {
		return true
	}
	switch f.sf.Type {
	case markerStruct, finalStruct, contractIface:
		return true
	}
	return false
}

func (f reflectField) Final() bool {
	return f.tagOption("final")
}

func (f reflectField) ArrayContents() bool {
	return f.tagOption("contents")
}

// tagOption reports whether the `immutable` struct tag lists the given
// comma-separated option.
func (f reflectField) tagOption(option string) bool {
	tag := f.sf.Tag.Get("immutable")
	for tag != "" {
		var part string
		part, tag, _ = strings.Cut(tag, ",")
		if part == option {
			return true
		}
	}
	return false
}

// Read returns the field's current value from obj. The instance is
// dereferenced through pointers and interfaces to reach the struct.
func (f reflectField) Read(obj Object) (Object, error) {
	ro, ok := obj.(reflectObject)
	if !ok {
		return nil, fmt.Errorf("field '%s': instance is not a reflected value", f.sf.Name)
	}
	rv := ro.rv
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, fmt.Errorf("field '%s': instance is nil", f.sf.Name)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct || rv.Type() != f.owner {
		return nil, fmt.Errorf("field '%s': instance does not match declaring type", f.sf.Name)
	}
	return reflectObject{rv: rv.Field(f.index)}, nil
}

// reflectObject implements Object over reflect.Value.
type reflectObject struct {
	rv reflect.Value
}

// IsNil reports whether the value is absent, looking through interface
// and pointer wrappers.
func (o reflectObject) IsNil() bool {
	rv := o.rv
	for {
		if !rv.IsValid() {
			return true
		}
		switch rv.Kind() {
		case reflect.Interface, reflect.Pointer:
			if rv.IsNil() {
				return true
			}
			rv = rv.Elem()
		case reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return rv.IsNil()
		default:
			return false
		}
	}
}

// Type returns the most-derived concrete type of the value, unwrapping
// interface and pointer indirection.
func (o reflectObject) Type() Type {
	rv := o.rv
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) && !rv.IsNil() {
		rv = rv.Elem()
	}
	return typeOf(rv.Type())
}
