// Package kantei implements the name-fortune judges and the weighted
// aggregator that combines them into a single score.
//
// Every judge is a pure function of its inputs. Static tables (the fortune
// table, taboo character sets, conflict pairs) are package-level values that
// are never mutated after initialisation, so a Service is safe for
// concurrent use.
package kantei
