package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names the JSON Schema a model answer must satisfy. Schemas are
// package-level values; each compiles once on first use.
type Schema struct {
	// Name identifies the schema to providers that want one (tool name,
	// response-format name). Kebab-case.
	Name string

	// Description is sent to the model to steer generation.
	Description string

	// Definition is the schema document as Go maps.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// Check validates raw model output against the schema.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrBadOutput{Raw: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	s.compileOnce.Do(s.compile)
	if s.compileErr != nil {
		return &ErrBadOutput{Raw: raw, Err: s.compileErr}
	}

	if err := s.compiled.Validate(doc); err != nil {
		return &ErrBadOutput{Raw: raw, Err: err}
	}
	return nil
}

// compile prepares the validator. The jsonschema compiler wants a parsed
// JSON document, so the definition round-trips through encoding/json.
func (s *Schema) compile() {
	b, err := json.Marshal(s.Definition)
	if err != nil {
		s.compileErr = fmt.Errorf("marshal schema %q: %w", s.Name, err)
		return
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		s.compileErr = fmt.Errorf("parse schema %q: %w", s.Name, err)
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("mem://%s.json", s.Name)
	if err := c.AddResource(url, doc); err != nil {
		s.compileErr = fmt.Errorf("register schema %q: %w", s.Name, err)
		return
	}
	s.compiled, s.compileErr = c.Compile(url)
}
