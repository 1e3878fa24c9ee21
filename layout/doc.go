// Package layout provides the writing-mode-agnostic geometric primitives
// shared by the float manager: absolute lengths, points, sizes, and the
// flow-logical coordinate frame ("line-left/block-start") that floats and
// queries are expressed in.
//
// It is kept to the primitives a pure geometry engine needs, plus the
// writing-mode conversions the engine applies at its physical boundary.
package layout
