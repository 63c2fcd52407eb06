package parse

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses a raw tool-call argument string into T.
//
// A string target receives the content unchanged, since models often pass
// bare text rather than a JSON-quoted string. Every other target goes through
// json.Unmarshal with two recovery passes: malformed JSON (single quotes,
// unquoted keys, trailing commas) is repaired with jsonrepair, and arguments
// where the model echoed the parameter schema instead of plain values
// ({"type": "string", "value": "x"}) are unwrapped before a final retry.
func ParseStringAs[T any](content string) (T, error) {
	var result T

	if reflect.TypeFor[T]().Kind() == reflect.String {
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil
	}

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to parse content as %T: invalid JSON and repair failed: %w", result, repairErr)
	}

	err := json.Unmarshal([]byte(repaired), &result)
	if err == nil {
		return result, nil
	}

	if unwrapped, unwrapErr := unwrapSchemaEchoes(repaired); unwrapErr == nil {
		if retryErr := json.Unmarshal([]byte(unwrapped), &result); retryErr == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("failed to parse content as %T: %w (content: %s, repaired: %s)", result, err, content, repaired)
}

// unwrapSchemaEchoes rewrites a JSON document in which values were mistakenly
// wrapped in schema-style {"type": ..., "value": ...} objects, a common model
// error when the parameter schema leaks into the arguments. The wrapper is
// replaced by its value at every nesting level.
func unwrapSchemaEchoes(jsonStr string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", err
	}

	unwrapped, err := json.Marshal(unwrapValue(data))
	if err != nil {
		return "", err
	}
	return string(unwrapped), nil
}

func unwrapValue(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if _, hasType := v["type"]; hasType && len(v) == 2 {
			if value, hasValue := v["value"]; hasValue {
				return unwrapValue(value)
			}
		}
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = unwrapValue(val)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = unwrapValue(val)
		}
		return result

	default:
		return data
	}
}
