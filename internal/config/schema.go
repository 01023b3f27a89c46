package config

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
)

// GenerateSchema reflects Config into a JSON Schema document.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Old keys in a user's file must not make it invalid.
		AllowAdditionalProperties: true,
		// Every key is optional; missing ones keep their defaults.
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		Anonymous:                  true,
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Scribe Configuration"
	schema.Description = "Settings read from ~/.config/scribe/config.json."

	return json.MarshalIndent(schema, "", "  ")
}

var (
	compileOnce sync.Once
	compiled    *validator.Schema
	compileErr  error
)

func compiledSchema() (*validator.Schema, error) {
	compileOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			compileErr = fmt.Errorf("generate schema: %w", err)
			return
		}
		compiler := validator.NewCompiler()
		if err := compiler.AddResource("config.json", bytes.NewReader(data)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("config.json")
	})
	return compiled, compileErr
}

// Validate checks raw config JSON against the schema. Syntax errors are
// reported as they come from the decoder.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			var msgs []string
			collectErrors(verr, &msgs)
			return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// collectErrors flattens the validation error tree into one line per leaf.
func collectErrors(err *validator.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 && err.InstanceLocation != "" {
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}
