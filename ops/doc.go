// Package ops provides standalone computation and conversion helpers:
// GPS-to-UTC time conversion, human-readable byte-size parsing and
// formatting, chunk-count estimation for files and in-memory values,
// quartile statistics, and nearest-date lookup.
//
// Every function is pure and independently usable; none touches shared
// state. Errors from the underlying parse, filesystem, and encoding
// operations are wrapped and returned to the caller rather than recovered.
package ops
