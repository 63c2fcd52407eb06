// Package parse converts raw tool-call argument strings into typed Go values.
// Models frequently emit arguments as almost-JSON (single quotes, unquoted
// keys, trailing commas) or wrap values in schema-style envelopes, so parsing
// first tries strict json.Unmarshal, then automatic repair via jsonrepair,
// then schema unwrapping, before giving up with a descriptive error.
//
// The entry point is the generic [ParseStringAs] function.
package parse
