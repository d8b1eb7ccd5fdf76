package userauth

import (
	"encoding/json"
	"errors"
	"fmt"

	jschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/avolkov/userauth/internal/common"
)

// validator applies the configured JSON Schema to registration candidates.
type validator struct {
	schema *jschema.Schema
}

func newValidator(schemaJSON string) (*validator, error) {
	var doc any
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("parsing registration schema: %w", err)
	}

	c := jschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource("registration.json", doc); err != nil {
		return nil, fmt.Errorf("adding registration schema: %w", err)
	}
	schema, err := c.Compile("registration.json")
	if err != nil {
		return nil, fmt.Errorf("compiling registration schema: %w", err)
	}

	return &validator{schema: schema}, nil
}

// Validate checks the candidate against the schema. On violation it returns
// common.ErrValidation carrying the first violated rule's message.
func (v *validator) Validate(candidate map[string]any) error {
	err := v.schema.Validate(candidate)
	if err == nil {
		return nil
	}

	var ve *jschema.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%w: %s", common.ErrValidation, firstCause(ve).Error())
	}
	return fmt.Errorf("%w: %v", common.ErrValidation, err)
}

// firstCause descends to the leftmost leaf of the validation-error tree,
// the first rule the candidate violated.
func firstCause(ve *jschema.ValidationError) *jschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
