// Package jsonschema derives JSON Schema fragments from Go types via
// reflection, covering the shapes tool parameters and outputs take: structs,
// primitives, slices, maps, and pointers for optional fields.
//
// The entry point is [GenerateJSONSchema]. Field schemas are refined through
// jsonschema struct tags (description, enum, minimum, maximum, required).
package jsonschema
