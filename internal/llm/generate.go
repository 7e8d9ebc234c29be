package llm

import (
	"context"
	"encoding/json"
)

// GenerateInto runs a schema-constrained generation and decodes the result into out.
// The response schema bounds the shape; the output is still checked against the full
// schema document because providers treat the response schema as a hint.
func GenerateInto(ctx context.Context, client Client, prompt string, doc *SchemaDoc, tier ModelTier, out any) error {
	raw, err := client.GenerateObject(ctx, prompt, doc.Schema, tier)
	if err != nil {
		return &APICallError{Message: "generation for " + doc.Name + " failed", Cause: err}
	}

	cleaned := CleanJSONBlock(raw)
	if !json.Valid([]byte(cleaned)) {
		return &ParseError{Message: "output for " + doc.Name + " is not valid JSON"}
	}
	if err := doc.Validate(cleaned); err != nil {
		return &ParseError{Message: "output does not match " + doc.Name, Cause: err}
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Message: "failed to decode output for " + doc.Name, Cause: err}
	}
	return nil
}
