package immutable_test

import (
	"time"

	"github.com/RomanKisilenko/immutable"
)

// Point is the canonical fully immutable value type: marked, sealed,
// every field final.
type Point struct {
	immutable.Marker
	immutable.Final
	X int `immutable:"final"`
	Y int `immutable:"final"`
}

// NewPoint is the constructor-boundary pattern: prove immutability where
// construction finishes.
func NewPoint(x, y int) Point {
	return immutable.MustCheck(Point{X: x, Y: y})
}

// MutableThing is not sealed and therefore never immutable.
type MutableThing struct {
	Value int
}

// Box is itself well-formed but holds a mutable field type.
type Box struct {
	immutable.Marker
	immutable.Final
	Contents MutableThing `immutable:"final"`
}

// OpenField is sealed but leaves a field reassignable.
type OpenField struct {
	immutable.Marker
	immutable.Final
	X int `immutable:"final"`
	Y int
}

// Labels carries the full array contract.
type Labels struct {
	immutable.Marker
	immutable.Final
	Names []string `immutable:"final,contents"`
}

// BareSlice declares an array field without the contents assertion.
type BareSlice struct {
	immutable.Marker
	immutable.Final
	Items []int `immutable:"final"`
}

// MutableElems asserts contents immutability over a mutable element type.
type MutableElems struct {
	immutable.Marker
	immutable.Final
	Items []MutableThing `immutable:"final,contents"`
}

// Counters exercises the map shape of the array category.
type Counters struct {
	immutable.Marker
	immutable.Final
	ByName map[string]int `immutable:"final,contents"`
}

// BareMap declares a map field without the contents assertion.
type BareMap struct {
	immutable.Marker
	immutable.Final
	ByName map[string]int `immutable:"final"`
}

// Node is directly self-referential through a pointer.
type Node struct {
	immutable.Marker
	immutable.Final
	Value int   `immutable:"final"`
	Next  *Node `immutable:"final"`
}

// Shape is an interface without the contract marker.
type Shape interface {
	Area() float64
}

// SealedShape is an interface carrying the contract marker.
type SealedShape interface {
	immutable.Contract
	Area() float64
}

// ShapeHolder holds an unmarked interface field.
type ShapeHolder struct {
	immutable.Marker
	immutable.Final
	S Shape `immutable:"final"`
}

// SealedShapeHolder holds a marked interface field, so verification of
// the declared type passes and only the runtime value can fail.
type SealedShapeHolder struct {
	immutable.Marker
	immutable.Final
	S SealedShape `immutable:"final"`
}

// Square is an immutable SealedShape implementation. The contract
// method comes from the embedded Marker.
type Square struct {
	immutable.Marker
	immutable.Final
	Side float64 `immutable:"final"`
}

func (Square) Area() float64 { return 0 }

// Blob is a mutable SealedShape implementation: it claims the contract
// but is not sealed.
type Blob struct {
	immutable.Marker
	Radius float64
}

func (Blob) Area() float64 { return 0 }

// MutableKeys asserts contents immutability over a map keyed by a
// mutable type.
type MutableKeys struct {
	immutable.Marker
	immutable.Final
	Index map[MutableThing]int `immutable:"final,contents"`
}

// Pipe holds a channel, an inherently mutable conduit.
type Pipe struct {
	immutable.Marker
	immutable.Final
	C chan int `immutable:"final"`
}

// Stamp holds a trusted standard-library value type.
type Stamp struct {
	immutable.Marker
	immutable.Final
	At time.Time `immutable:"final"`
}
