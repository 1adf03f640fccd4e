package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RomanKisilenko/immutable"
)

// Kind identifies the shape of a declared type.
type Kind string

const (
	// KindStruct declares a concrete type with fields.
	KindStruct Kind = "struct"

	// KindInterface declares an interface type. Interfaces have no
	// fields; they only gate recursion through the contract marker.
	KindInterface Kind = "interface"
)

// Document is the YAML schema of a single model file.
type Document struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one type in a model file.
type TypeDef struct {
	// Name uniquely identifies the type within the model.
	Name string `yaml:"name"`

	// Kind is "struct" or "interface".
	Kind Kind `yaml:"kind"`

	// Sealed declares the type non-extensible. Ignored for interfaces.
	Sealed bool `yaml:"sealed,omitempty"`

	// Immutable sets the immutability-contract marker. Marked types are
	// the ones the CLI verifies.
	Immutable bool `yaml:"immutable,omitempty"`

	// Fields lists declared fields. Must be empty for interfaces.
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef declares one field of a struct type.
type FieldDef struct {
	// Name is the field name.
	Name string `yaml:"name"`

	// Type names the field's declared type: a declared type name, a
	// primitive name, or "[]elem" for arrays.
	Type string `yaml:"type"`

	// Final declares the field non-reassignable.
	Final bool `yaml:"final,omitempty"`

	// Static excludes the field from checks entirely.
	Static bool `yaml:"static,omitempty"`

	// Contents asserts that array contents are immutable.
	// Only meaningful on array-typed fields.
	Contents bool `yaml:"contents,omitempty"`
}

// primitives are the built-in value type names a field may reference.
var primitives = map[string]struct{}{
	"bool": {}, "string": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
	"byte": {}, "rune": {},
	"float32": {}, "float64": {},
	"complex64": {}, "complex128": {},
}

// Model is a resolved, interlinked set of type descriptors.
type Model struct {
	types map[string]*Type
	order []string // declaration order of named types
}

// Type implements immutable.Type for a model-declared type.
type Type struct {
	name   string
	kind   Kind
	sealed bool
	marked bool
	prim   bool
	array  bool
	elem   *Type
	fields []*Field
}

// Field implements immutable.Field for a model-declared field.
type Field struct {
	name     string
	typ      *Type
	final    bool
	static   bool
	contents bool
}

// Build resolves the given documents into a Model. Duplicate type names
// and unresolved field type references are errors.
func Build(docs ...*Document) (*Model, error) {
	m := &Model{types: make(map[string]*Type)}

	// First pass: register declared names so fields can reference
	// types in any order.
	for _, doc := range docs {
		for _, def := range doc.Types {
			if def.Name == "" {
				return nil, fmt.Errorf("type with empty name")
			}
			if def.Kind != KindStruct && def.Kind != KindInterface {
				return nil, fmt.Errorf("type %q: unknown kind %q", def.Name, def.Kind)
			}
			if _, dup := m.types[def.Name]; dup {
				return nil, fmt.Errorf("duplicate type %q", def.Name)
			}
			m.types[def.Name] = &Type{
				name:   def.Name,
				kind:   def.Kind,
				sealed: def.Sealed,
				marked: def.Immutable,
			}
			m.order = append(m.order, def.Name)
		}
	}

	// Second pass: resolve fields.
	for _, doc := range docs {
		for _, def := range doc.Types {
			t := m.types[def.Name]
			if def.Kind == KindInterface && len(def.Fields) > 0 {
				return nil, fmt.Errorf("interface %q must not declare fields", def.Name)
			}
			seen := make(map[string]struct{}, len(def.Fields))
			for _, fd := range def.Fields {
				if fd.Name == "" {
					return nil, fmt.Errorf("type %q: field with empty name", def.Name)
				}
				if _, dup := seen[fd.Name]; dup {
					return nil, fmt.Errorf("type %q: duplicate field %q", def.Name, fd.Name)
				}
				seen[fd.Name] = struct{}{}
				ft, err := m.resolve(fd.Type)
				if err != nil {
					return nil, fmt.Errorf("type %q, field %q: %w", def.Name, fd.Name, err)
				}
				t.fields = append(t.fields, &Field{
					name:     fd.Name,
					typ:      ft,
					final:    fd.Final,
					static:   fd.Static,
					contents: fd.Contents,
				})
			}
		}
	}

	return m, nil
}

// resolve maps a field type reference to its descriptor, synthesizing
// primitive and array descriptors on demand.
func (m *Model) resolve(ref string) (*Type, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty type reference")
	}
	if elemRef, ok := strings.CutPrefix(ref, "[]"); ok {
		elem, err := m.resolve(elemRef)
		if err != nil {
			return nil, err
		}
		if t, ok := m.types[ref]; ok {
			return t, nil
		}
		t := &Type{name: ref, array: true, sealed: true, elem: elem}
		m.types[ref] = t
		return t, nil
	}
	if _, ok := primitives[ref]; ok {
		if t, ok := m.types[ref]; ok {
			return t, nil
		}
		t := &Type{name: ref, prim: true}
		m.types[ref] = t
		return t, nil
	}
	if t, ok := m.types[ref]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unresolved type reference %q", ref)
}

// Type returns the descriptor for a declared type name.
func (m *Model) Type(name string) (*Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

// Marked returns the declared types carrying the immutability marker,
// in declaration order. These are the verification roots.
func (m *Model) Marked() []*Type {
	var marked []*Type
	for _, name := range m.order {
		if t := m.types[name]; t.marked {
			marked = append(marked, t)
		}
	}
	return marked
}

// Names returns all declared type names, sorted.
func (m *Model) Names() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	sort.Strings(names)
	return names
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Key identifies model types by name; model names are unique within a
// model and never collide with reflect-sourced keys.
func (t *Type) Key() any { return t.name }

func (t *Type) IsInterface() bool { return t.kind == KindInterface }
func (t *Type) IsPrimitive() bool { return t.prim }
func (t *Type) IsSealed() bool    { return t.sealed }
func (t *Type) Marked() bool      { return t.marked }
func (t *Type) IsArray() bool     { return t.array }

// Elem returns the array element type, nil for non-arrays.
func (t *Type) Elem() immutable.Type {
	if t.elem == nil {
		return nil
	}
	return t.elem
}

// MapKey is always nil: model arrays declare only an element type.
func (t *Type) MapKey() immutable.Type { return nil }

// Fields returns the declared fields.
func (t *Type) Fields() []immutable.Field {
	if len(t.fields) == 0 {
		return nil
	}
	fields := make([]immutable.Field, len(t.fields))
	for i, f := range t.fields {
		fields[i] = f
	}
	return fields
}

// Machinery is always false: model descriptors never describe the
// verifier's own support types.
func (t *Type) Machinery() bool { return false }

func (f *Field) Name() string         { return f.name }
func (f *Field) Type() immutable.Type { return f.typ }
func (f *Field) Static() bool         { return f.static }
func (f *Field) Final() bool          { return f.final }
func (f *Field) ArrayContents() bool  { return f.contents }

// Read always reports no value: models carry no instances, so
// runtime-type checks are vacuous by design.
func (f *Field) Read(immutable.Object) (immutable.Object, error) {
	return nil, nil
}

var (
	_ immutable.Type  = (*Type)(nil)
	_ immutable.Field = (*Field)(nil)
)
