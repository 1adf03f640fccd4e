package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fingerprintDomain prefixes the hash input for domain separation.
// Version suffix enables future format migration.
const fingerprintDomain = "immutable/model/v1"

// Fingerprint returns a content-addressed identity for the resolved
// model: SHA-256 over a canonical line-oriented rendering, with a
// domain prefix and a null separator to prevent boundary ambiguity.
//
// Type and field names are NFC normalized so visually identical model
// files hash identically regardless of Unicode encoding form. Types are
// rendered in sorted name order, fields in declaration order, so the
// fingerprint is independent of declaration order across files.
func (m *Model) Fingerprint() string {
	var buf strings.Builder
	for _, name := range m.Names() {
		t := m.types[name]
		fmt.Fprintf(&buf, "type %s kind=%s sealed=%t marked=%t\n",
			norm.NFC.String(t.name), t.kind, t.sealed, t.marked)
		for _, f := range t.fields {
			fmt.Fprintf(&buf, "  field %s type=%s final=%t static=%t contents=%t\n",
				norm.NFC.String(f.name), norm.NFC.String(f.typ.name),
				f.final, f.static, f.contents)
		}
	}

	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(buf.String()))
	return hex.EncodeToString(h.Sum(nil))
}
