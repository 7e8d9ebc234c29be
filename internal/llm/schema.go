// Package llm - schema.go maps the embedded JSON schemas onto provider response schemas.
package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
)

// Schema is the subset of JSON Schema understood by structured-generation providers.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Format      string             `json:"format,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// toGenai converts the schema into the Gemini SDK representation.
func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Format:      s.Format,
		Enum:        s.Enum,
		Nullable:    s.Nullable,
		Items:       s.Items.toGenai(),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenai()
		}
	}
	return out
}

func genaiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}

// SchemaDoc pairs a response schema with the compiled validator for the same document.
type SchemaDoc struct {
	Name      string
	Schema    *Schema
	validator *schemas.Validator
}

// Validate checks generated JSON against the full schema document.
func (d *SchemaDoc) Validate(jsonContent string) error {
	return d.validator.Validate(jsonContent)
}

// ParseSchemaDoc builds a SchemaDoc from a JSON Schema document.
func ParseSchemaDoc(name string, raw []byte) (*SchemaDoc, error) {
	var schema Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}
	validator, err := schemas.Compile(name, string(raw))
	if err != nil {
		return nil, err
	}
	return &SchemaDoc{Name: name, Schema: &schema, validator: validator}, nil
}

// --- Predefined Schemas ---

var (
	profileSchema           = embeddedSchema(schemafiles.ProfileFile)
	jobPostingSchema        = embeddedSchema(schemafiles.JobPostingFile)
	tailoringInsightsSchema = embeddedSchema(schemafiles.TailoringInsightsFile)
)

// ProfileSchema returns the schema for extracted and tailored profiles.
func ProfileSchema() *SchemaDoc { return profileSchema() }

// JobPostingSchema returns the schema for extracted job postings.
func JobPostingSchema() *SchemaDoc { return jobPostingSchema() }

// TailoringInsightsSchema returns the schema for tailoring insights.
func TailoringInsightsSchema() *SchemaDoc { return tailoringInsightsSchema() }

// embeddedSchema loads a schema bundled with the binary. A broken bundle is a build defect, so it panics.
func embeddedSchema(name string) func() *SchemaDoc {
	return sync.OnceValue(func() *SchemaDoc {
		raw, err := schemafiles.Read(name)
		if err != nil {
			panic(err)
		}
		doc, err := ParseSchemaDoc(name, raw)
		if err != nil {
			panic(err)
		}
		return doc
	})
}
