// Package fspath contains path representations and the segmenting rules used when shortening.
package fspath

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module.
type Local = string

// POSIX is a forward-slash delimited path representation. It is the format expected by functions in
// the path module.
type POSIX = string
