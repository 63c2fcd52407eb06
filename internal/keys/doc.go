// Package keys resolves API keys for the search tools. Keys can live in a
// flat keys.json file (alias → key) or in environment variables; the file
// takes precedence so a single config can serve multiple shells.
package keys
