// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the
// character dictionary (defined in internal/store) to fulfill application
// features.
//
// Key components:
//
// 1. Name resolution:
//   - Normalizes raw surname and given-name input
//   - Resolves each glyph to a stroke count through the dictionary, caller
//     overrides or the iteration mark
//
// 2. Use case implementations:
//   - Kakusu computes the five classical stroke counts
//   - Analyze runs the full kantei scoring engine
//
// 3. Error handling:
//   - Translates store and domain errors into service sentinels the API
//     layer maps onto HTTP status codes
//
// The service layer depends on domain entities and the store interfaces,
// never on a specific dictionary implementation.
package service
