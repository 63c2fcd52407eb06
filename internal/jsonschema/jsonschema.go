package jsonschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the JSON Schema fragment advertised for a tool's parameters and
// output. Only the keywords tool argument shapes need are modeled.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	// Items describes array elements.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties describes map values.
	AdditionalProperties *Schema  `json:"additionalProperties,omitempty"`
	Enum                 []any    `json:"enum,omitempty"`
	Minimum              *float64 `json:"minimum,omitempty"`
	Maximum              *float64 `json:"maximum,omitempty"`
}

// String returns the schema as compact JSON.
func (s *Schema) String() string {
	jsonBytes, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(jsonBytes)
}

// GenerateJSONSchema derives a JSON schema from the type parameter T via
// reflection. Struct fields are named after their json tags; fields tagged
// json:"-" or unexported are skipped. A field is required unless it is a
// pointer or carries omitempty, and jsonschema struct tags refine the field
// schema (see [applyFieldTag]).
//
// Tool argument and output types are plain trees; if a struct type ever
// references itself, the cycle is cut with a bare object schema instead of
// recursing.
func GenerateJSONSchema[T any]() *Schema {
	return schemaFor(reflect.TypeFor[T](), make(map[reflect.Type]bool))
}

// schemaFor maps a Go type onto its schema. seen holds the struct types on
// the current descent path.
func schemaFor(t reflect.Type, seen map[reflect.Type]bool) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return schemaFor(t.Elem(), seen)

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: schemaFor(t.Elem(), seen)}

	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: schemaFor(t.Elem(), seen)}

	case reflect.Struct:
		return structSchema(t, seen)

	default:
		return &Schema{Type: "object"}
	}
}

func structSchema(t reflect.Type, seen map[reflect.Type]bool) *Schema {
	if seen[t] {
		return &Schema{Type: "object"}
	}
	seen[t] = true
	defer delete(seen, t)

	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty := fieldName(field)
		if name == "" {
			continue
		}

		fieldSchema := schemaFor(field.Type, seen)
		requiredByTag := applyFieldTag(field, fieldSchema)

		schema.Properties[name] = fieldSchema
		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// fieldName resolves the property name from the field's json tag. An empty
// name means the field is excluded from the schema.
func fieldName(field reflect.StructField) (name string, omitEmpty bool) {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return "", false
	}
	if jsonTag == "" {
		return field.Name, false
	}

	name = jsonTag
	if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
		name = jsonTag[:commaIdx]
		omitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
		if name == "" {
			name = field.Name
		}
	}
	return name, omitEmpty
}

// applyFieldTag refines a field schema from its jsonschema struct tag.
// Supported items, comma-separated:
//
//	description=<text>   field description (must not contain commas)
//	enum=<value>         allowed value, repeatable, converted to the field type
//	minimum=<number>     lower bound for numeric fields
//	maximum=<number>     upper bound for numeric fields
//	required             mark the field required regardless of omitempty
//
// It reports whether the field was explicitly marked required. Malformed
// items are logged and skipped so a bad tag never breaks schema generation.
func applyFieldTag(field reflect.StructField, schema *Schema) bool {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false
	}

	required := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")

		switch {
		case key == "required" && !hasValue:
			required = true

		case key == "description":
			schema.Description = value

		case key == "enum":
			enumValue, err := convertEnumValue(field.Type, value)
			if err != nil {
				slog.Warn("skipping invalid jsonschema enum value",
					"field", field.Name, "value", value, "error", err)
				continue
			}
			schema.Enum = append(schema.Enum, enumValue)

		case key == "minimum" || key == "maximum":
			bound, err := strconv.ParseFloat(value, 64)
			if err != nil {
				slog.Warn("skipping invalid jsonschema bound",
					"field", field.Name, "value", value, "error", err)
				continue
			}
			if key == "minimum" {
				schema.Minimum = &bound
			} else {
				schema.Maximum = &bound
			}
		}
	}

	return required
}

// convertEnumValue converts the tag's string literal into the field's type so
// the marshaled schema carries typed enum members.
func convertEnumValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Bool:
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("enum unsupported for field type %v", fieldType)
	}
}
