// Package model provides immutability descriptors parsed from
// declarative YAML type models.
//
// A model file describes a closed set of types and their fields, so a
// type graph can be verified without compiled Go types: contract
// declarations checked in CI, or models of types maintained in another
// language.
//
// # Model Format
//
// Models are defined in YAML files with the following structure:
//
//	types:
//	  - name: Point
//	    kind: struct
//	    sealed: true
//	    immutable: true
//	    fields:
//	      - name: x
//	        type: int
//	        final: true
//	      - name: y
//	        type: int
//	        final: true
//	  - name: Shape
//	    kind: interface
//	    immutable: true
//
// Field types may name another declared type, a primitive (bool, string,
// the numeric types), or an array of either using "[]elem" syntax. Array
// fields assert immutable contents with "contents: true".
//
// # Verification
//
// Load resolves all type references into a descriptor graph implementing
// the immutable.Type and immutable.Field interfaces; the graph carries
// no instances, so it is checked with Checker.VerifyType:
//
//	m, err := model.LoadDir("models")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	checker := immutable.NewChecker()
//	for _, t := range m.Marked() {
//	    if err := checker.VerifyType(t); err != nil {
//	        fmt.Println(err)
//	    }
//	}
//
// # Fingerprint
//
// Model.Fingerprint returns a content-addressed hash of the resolved
// model (domain-separated SHA-256 over an NFC-normalized canonical
// rendering), recorded by the CLI ledger for provenance.
package model
