package pipeline

import (
	"bytes"
	"encoding/json"
)

// Kind selects the prompt, required fields and result shape of an analysis.
type Kind string

const (
	KindFood            Kind = "food"
	KindBody            Kind = "body"
	KindRecommendations Kind = "recommendations"
	KindRecipe          Kind = "recipe"
	KindChat            Kind = "chat"
)

type fieldType int

const (
	fieldArray fieldType = iota
	fieldObject
	fieldString
)

func (t fieldType) String() string {
	switch t {
	case fieldArray:
		return "array"
	case fieldObject:
		return "object"
	default:
		return "string"
	}
}

func (t fieldType) matches(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return false
	}
	switch t {
	case fieldArray:
		return b[0] == '['
	case fieldObject:
		return b[0] == '{'
	default:
		return b[0] == '"'
	}
}

type requirement struct {
	key string
	typ fieldType
}

// requirements only covers top-level keys; nested fields are not checked.
var requirements = map[Kind][]requirement{
	KindFood: {
		{key: "alimentos", typ: fieldArray},
	},
	KindBody: {
		{key: "analise_corporal", typ: fieldObject},
	},
	KindRecommendations: {
		{key: "mealPlan", typ: fieldObject},
		{key: "workout", typ: fieldObject},
	},
	KindRecipe: {
		{key: "nome", typ: fieldString},
		{key: "ingredientes", typ: fieldArray},
	},
}

func Validate(kind Kind, payload []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return &SchemaViolationError{Kind: kind, Reason: "payload is not a JSON object", Payload: payload}
	}
	for _, r := range requirements[kind] {
		raw, ok := top[r.key]
		if !ok {
			return &SchemaViolationError{Kind: kind, Key: r.key, Reason: "is missing", Payload: payload}
		}
		if !r.typ.matches(raw) {
			return &SchemaViolationError{Kind: kind, Key: r.key, Reason: "must be a JSON " + r.typ.String(), Payload: payload}
		}
	}
	return nil
}

// DetectModelFailure recognises {"success": false, "error": "..."} payloads.
func DetectModelFailure(payload []byte) (*ModelFailure, bool) {
	var probe struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, false
	}
	if probe.Success == nil || *probe.Success {
		return nil, false
	}
	return &ModelFailure{Message: probe.Error}, true
}
