// Package dictionary provides the character dictionary used to resolve
// glyphs to stroke counts. It ships an embedded YAML seed, reads additional
// YAML dictionaries, keeps an in-memory store and opens the configured
// provider (memory, sqlite or pgx).
package dictionary
