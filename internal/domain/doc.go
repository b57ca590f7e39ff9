// Package domain contains the core value objects of the name-fortune engine:
// characters with their stroke counts, the five-element and yin-yang
// attributes derived from them, and full names with their classical
// aggregate counts. Everything here is immutable and free of I/O.
package domain
