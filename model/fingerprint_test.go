package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanKisilenko/immutable/model"
)

func buildModel(t *testing.T, docs ...*model.Document) *model.Model {
	t.Helper()
	m, err := model.Build(docs...)
	require.NoError(t, err)
	return m
}

// TestFingerprint_Deterministic yields the same digest for the same
// declarations.
func TestFingerprint_Deterministic(t *testing.T) {
	doc := func() *model.Document {
		return &model.Document{Types: []model.TypeDef{
			{Name: "Point", Kind: model.KindStruct, Sealed: true, Immutable: true,
				Fields: []model.FieldDef{
					{Name: "X", Type: "int", Final: true},
					{Name: "Y", Type: "int", Final: true},
				}},
		}}
	}

	a := buildModel(t, doc()).Fingerprint()
	b := buildModel(t, doc()).Fingerprint()

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

// TestFingerprint_DeclarationOrderIndependent hashes types in sorted
// name order, so splitting or reordering files does not change it.
func TestFingerprint_DeclarationOrderIndependent(t *testing.T) {
	first := &model.Document{Types: []model.TypeDef{
		{Name: "A", Kind: model.KindStruct, Sealed: true},
		{Name: "B", Kind: model.KindStruct, Sealed: true},
	}}
	second := &model.Document{Types: []model.TypeDef{
		{Name: "B", Kind: model.KindStruct, Sealed: true},
		{Name: "A", Kind: model.KindStruct, Sealed: true},
	}}

	assert.Equal(t,
		buildModel(t, first).Fingerprint(),
		buildModel(t, second).Fingerprint())
}

// TestFingerprint_SensitiveToMarkers changes when any contract marker
// flips.
func TestFingerprint_SensitiveToMarkers(t *testing.T) {
	base := func(final bool) *model.Document {
		return &model.Document{Types: []model.TypeDef{
			{Name: "T", Kind: model.KindStruct, Sealed: true,
				Fields: []model.FieldDef{{Name: "X", Type: "int", Final: final}}},
		}}
	}

	assert.NotEqual(t,
		buildModel(t, base(true)).Fingerprint(),
		buildModel(t, base(false)).Fingerprint())
}

// TestFingerprint_UnicodeNormalized hashes composed and decomposed
// spellings of the same name identically.
func TestFingerprint_UnicodeNormalized(t *testing.T) {
	composed := &model.Document{Types: []model.TypeDef{
		{Name: "Caf\u00e9", Kind: model.KindStruct, Sealed: true},
	}}
	decomposed := &model.Document{Types: []model.TypeDef{
		{Name: "Cafe\u0301", Kind: model.KindStruct, Sealed: true},
	}}

	assert.Equal(t,
		buildModel(t, composed).Fingerprint(),
		buildModel(t, decomposed).Fingerprint())
}
