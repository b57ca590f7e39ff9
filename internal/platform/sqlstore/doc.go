// Package sqlstore provides the SQL-backed implementation of the character
// dictionary defined in the internal/store package. It runs on either SQLite
// (modernc.org/sqlite, no cgo) or PostgreSQL (pgx), handles the schema
// through embedded goose migrations, and maps driver errors onto the store
// sentinel errors.
package sqlstore
