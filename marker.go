package immutable

// Contract is the type-level marker meaning "this type claims
// immutability". Interfaces opt in by embedding Contract; structs opt in
// by embedding Marker, which implements it.
//
// The marker method is unexported so the contract cannot be satisfied
// accidentally by an unrelated method set.
type Contract interface {
	immutableType()
}

// Marker is a zero-size struct embedded to claim the immutability
// contract on a concrete type. The embedded field carries no state and
// is excluded from field checks.
type Marker struct{}

func (Marker) immutableType() {}

// sealedContract is satisfied only by embedding Final.
type sealedContract interface {
	sealedType()
}

// Final is a zero-size struct embedded to declare a concrete type
// non-extensible. Go cannot forbid embedding, so sealedness is a
// declared contract, symmetric with the array-contents marker: an
// assertion the verifier reads, not a property the compiler enforces.
type Final struct{}

func (Final) sealedType() {}

var _ Contract = Marker{}
var _ sealedContract = Final{}
