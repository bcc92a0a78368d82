// Package types defines the tri-state value, the choice record offered to a
// single-select input, the resolver configuration, and the standard error
// types shared by the tristate packages.
//
// A TriState stands for a nullable boolean attribute: True, False, or
// Unknown when the underlying column holds NULL. The zero value is Unknown.
package types
