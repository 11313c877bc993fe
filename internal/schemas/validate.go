// Package schemas provides JSON Schema validation for persisted analysis
// entries. Every record accepted by the history migration chain must pass the
// entry schema before it is returned to callers.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// entrySchema is the draft-07 schema for a fully migrated AnalysisEntry.
// jdText may legitimately be empty (an empty JD is a valid analysis input),
// but id must not be. Scores are bounded the same way the engine bounds them.
const entrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "id", "schemaVersion", "createdAt", "updatedAt", "jdText",
    "extractedSkills", "plan", "checklist", "questions",
    "baseScore", "finalScore", "skillConfidenceMap"
  ],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "schemaVersion": {"type": "integer", "minimum": 1},
    "createdAt": {"type": "string", "format": "date-time"},
    "updatedAt": {"type": "string", "format": "date-time"},
    "company": {"type": "string"},
    "role": {"type": "string"},
    "jdText": {"type": "string"},
    "extractedSkills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "skills"],
        "properties": {
          "name": {"type": "string"},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "plan": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["day", "focus", "tasks"],
        "properties": {
          "day": {"type": "string"},
          "focus": {"type": "string"},
          "tasks": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "checklist": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["round", "title", "items"],
        "properties": {
          "round": {"type": "string"},
          "title": {"type": "string"},
          "items": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "questions": {
      "type": "array",
      "maxItems": 10,
      "uniqueItems": true,
      "items": {"type": "string"}
    },
    "baseScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "finalScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "skillConfidenceMap": {
      "type": "object",
      "additionalProperties": {"enum": ["know", "practice"]}
    },
    "companyIntel": {
      "type": "object",
      "required": ["companyName", "industry", "size", "hiringFocus", "rounds"],
      "properties": {
        "companyName": {"type": "string", "minLength": 1},
        "industry": {"type": "string"},
        "size": {"enum": ["Startup", "Mid-size", "Enterprise"]},
        "hiringFocus": {"type": "string"},
        "rounds": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["round", "title", "why"],
            "properties": {
              "round": {"type": "string"},
              "title": {"type": "string"},
              "why": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var entrySchemaLoader = gojsonschema.NewStringLoader(entrySchema)

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema validation failures for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("entry validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateEntry validates a JSON document against the analysis entry schema.
// Returns a *ValidationError when the document is well-formed JSON but does not
// conform, and a plain error when the document cannot be evaluated at all.
func ValidateEntry(doc []byte) error {
	result, err := gojsonschema.Validate(entrySchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema evaluation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
