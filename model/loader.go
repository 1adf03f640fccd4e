package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError describes a failure to read or parse a model file.
type LoadError struct {
	Path    string // File or directory that failed
	Message string // What went wrong
	Err     error  // Underlying error (optional)
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Parse decodes a single model document. Unknown YAML keys are errors,
// so typos in field markers fail loudly instead of silently weakening
// the contract.
func Parse(data []byte, path string) (*Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid model document", Err: err}
	}
	return &doc, nil
}

// Load reads and resolves a single model file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read model file", Err: err}
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	m, err := Build(doc)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid model", Err: err}
	}
	return m, nil
}

// LoadDir reads every .yaml/.yml file in dir (sorted by name for
// deterministic resolution) and resolves them as one model, so files
// may reference types declared in sibling files.
func LoadDir(dir string) (*Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "cannot read model directory", Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, &LoadError{Path: dir, Message: "no model files found"}
	}

	var docs []*Document
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Path: path, Message: "cannot read model file", Err: err}
		}
		doc, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	m, err := Build(docs...)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "invalid model", Err: err}
	}
	return m, nil
}
