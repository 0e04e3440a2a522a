package deck

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const slideSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["slides"],
  "properties": {
    "intro": {"type": "string"},
    "slides": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "insight", "type", "data"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "insight": {"type": "string"},
          "type": {"enum": ["bullets", "chart"]},
          "context": {"type": "string"}
        },
        "if": {"properties": {"type": {"const": "chart"}}},
        "then": {
          "properties": {
            "data": {
              "type": "object",
              "required": ["type", "data"],
              "properties": {
                "type": {"type": "string"},
                "data": {"type": "array", "minItems": 1, "items": {"type": "array", "minItems": 2}},
                "source": {"type": "string"}
              }
            }
          }
        },
        "else": {
          "properties": {
            "data": {
              "type": "array",
              "minItems": 1,
              "items": {
                "anyOf": [
                  {"type": "string"},
                  {"type": "object", "required": ["point"], "properties": {"point": {"type": "string"}, "desc": {"type": "string"}}}
                ]
              }
            }
          }
        }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(slideSchema)

// Validate checks a model response against the slide-content schema and
// returns one line per problem. The result is advisory: Parse and Reconcile
// already tolerate everything reported here.
func Validate(raw string) []string {
	doc := gojsonschema.NewStringLoader(ExtractJSON(raw))

	result, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return issues
}
