// Package loader reads Swagger 2.0 documents (JSON or YAML) and exposes their
// definitions as a validation Config.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/reoring/swagval"
	"github.com/reoring/swagval/i18n"
	"github.com/reoring/swagval/schema"
)

// Document is the part of a Swagger document the validator consumes.
type Document struct {
	Swagger     string
	Definitions schema.Definitions
}

type rawDocument struct {
	Swagger     string                     `json:"swagger"`
	Definitions map[string]json.RawMessage `json:"definitions"`
}

// LoadFile reads and loads the document at path.
func LoadFile(path string) (*Document, Diag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("loader: %w", err)
	}
	return Load(data)
}

// Load parses a Swagger document. JSON input is detected by its leading '{';
// anything else is decoded as YAML.
func Load(data []byte) (*Document, Diag, error) {
	d := &simpleDiag{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, d, errors.New("loader: empty document")
	}
	js := trimmed
	if trimmed[0] != '{' {
		converted, err := yamlToJSON(trimmed)
		if err != nil {
			return nil, d, err
		}
		js = converted
	}

	var raw rawDocument
	if err := json.Unmarshal(js, &raw); err != nil {
		return nil, d, fmt.Errorf("loader: invalid document: %w", err)
	}
	if raw.Swagger != "" && raw.Swagger != "2.0" {
		d.warnf("swagger version %q is not 2.0", raw.Swagger)
	}

	doc := &Document{Swagger: raw.Swagger, Definitions: make(schema.Definitions, len(raw.Definitions))}
	for _, name := range sortedNames(raw.Definitions) {
		var s schema.Schema
		if err := json.Unmarshal(raw.Definitions[name], &s); err != nil {
			return nil, d, fmt.Errorf("loader: definition %q: %w", name, err)
		}
		doc.Definitions[name] = &s
	}
	checkReferences(doc.Definitions, d)
	return doc, d, nil
}

// Lookup returns the named definition.
func (doc *Document) Lookup(name string) (*schema.Schema, bool) {
	s, ok := doc.Definitions[name]
	return s, ok
}

// Option adjusts the Config built by Document.Config.
type Option func(*swagval.Config)

// WithPatterns enforces "pattern" constraints with swagval.RegexpMatcher.
func WithPatterns() Option {
	return func(c *swagval.Config) { c.Match = swagval.RegexpMatcher() }
}

// WithMatcher installs a custom pattern engine.
func WithMatcher(m swagval.PatternMatcher) Option {
	return func(c *swagval.Config) { c.Match = m }
}

// WithTranslator selects the message catalog.
func WithTranslator(tr i18n.Translator) Option {
	return func(c *swagval.Config) { c.Translator = tr }
}

// Config returns a validation Config backed by the document's definitions.
func (doc *Document) Config(opts ...Option) swagval.Config {
	cfg := swagval.DefaultConfig()
	cfg.Definitions = doc.Definitions
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// checkReferences warns about references that no definition satisfies. These
// are not load errors: validation reports them only when a document reaches them.
func checkReferences(defs schema.Definitions, d *simpleDiag) {
	for _, name := range sortedNames(defs) {
		for _, ref := range schema.References(defs[name]) {
			if _, ok := defs[ref.Name]; !ok {
				d.warnf("definition %q references unknown schema %q", name, ref.Name)
			}
		}
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
