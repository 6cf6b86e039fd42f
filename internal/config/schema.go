// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package config

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaState holds the compiled schema and sync.Once for thread-safe
// initialization.
type schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var globalSchemaState = &schemaState{}

// GenerateSchema generates a JSON Schema from the Config struct.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = jsonschema.ID(GetSchemaID())
	schema.Title = "Dial Interpreter Configuration"
	schema.Description = "Schema for dial's config file"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.In("config-schema").Hint("failed to marshal schema").Wrap(err)
	}
	data = append(data, '\n')
	return data, nil
}

// ValidateSchema validates JSON-compatible data against the generated
// Config JSON Schema.
func ValidateSchema(data []byte) error {
	if len(data) == 0 {
		return oops.In("config-schema").New("configuration data is empty")
	}

	var jsonData any
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return oops.In("config-schema").Hint("invalid configuration encoding").Wrap(err)
	}

	sch, err := getCompiledSchema()
	if err != nil {
		return oops.In("config-schema").Hint("failed to compile schema").Wrap(err)
	}

	if err := sch.Validate(jsonData); err != nil {
		return oops.In("config-schema").Hint("schema validation failed").Wrap(err)
	}

	return nil
}

// getCompiledSchema returns the cached compiled schema or compiles it.
func getCompiledSchema() (*jschema.Schema, error) {
	globalSchemaState.once.Do(func() {
		globalSchemaState.schema, globalSchemaState.err = compileSchema()
	})
	return globalSchemaState.schema, globalSchemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return nil, oops.In("config-schema").Hint("failed to parse generated schema").Wrap(err)
	}

	compiler := jschema.NewCompiler()
	if err := compiler.AddResource(GetSchemaID(), schemaDoc); err != nil {
		return nil, oops.In("config-schema").Hint("failed to add schema resource").Wrap(err)
	}

	sch, err := compiler.Compile(GetSchemaID())
	if err != nil {
		return nil, oops.In("config-schema").Hint("failed to compile schema").Wrap(err)
	}

	return sch, nil
}

// ResetSchemaCache clears the cached schema. Used for testing.
func ResetSchemaCache() {
	globalSchemaState = &schemaState{}
}

// GetSchemaID returns the schema $id for use in config files.
func GetSchemaID() string {
	return "https://dial.dev/schemas/config.schema.json"
}

// FormatSchemaError formats a schema validation error for display.
func FormatSchemaError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if strings.Contains(msg, "schema validation failed:") {
		msg = strings.TrimPrefix(msg, "schema validation failed: ")
	}
	return msg
}
