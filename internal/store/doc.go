// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying character dictionary from the
// application's core logic, allowing the scoring engine to remain
// independent of where stroke counts and readings are kept.
package store
