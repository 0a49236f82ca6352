package pipeline

import (
	"fitlens-backend/domain"
	"fmt"
)

// MalformedResponseError carries the raw model text that could not be turned
// into a JSON object.
type MalformedResponseError struct {
	Raw string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("no JSON object found in model response (%d bytes)", len(e.Raw))
}

func (e *MalformedResponseError) Is(target error) bool { return target == domain.ErrMalformedResponse }

type SchemaViolationError struct {
	Kind    Kind
	Key     string
	Reason  string
	Payload []byte
}

func (e *SchemaViolationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s response: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s response: %q %s", e.Kind, e.Key, e.Reason)
}

func (e *SchemaViolationError) Is(target error) bool { return target == domain.ErrSchemaViolation }

// ModelFailure is a failure the model itself reported, e.g. no food in the
// picture. It is a regular result, not a fault.
type ModelFailure struct {
	Message string
}

func (e *ModelFailure) Error() string {
	return "model reported failure: " + e.Message
}

func (e *ModelFailure) Is(target error) bool { return target == domain.ErrModelReported }
