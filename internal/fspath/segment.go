package fspath

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// MaxLength is the width from which a path is considered too long for legacy APIs.
const MaxLength = 260

// Width returns the length of a path in UTF-16 code units, the unit in which MaxLength is expressed.
func Width(fp Local) int {
	n := 0
	for _, r := range fp {
		if w := utf16.RuneLen(r); w > 0 {
			n += w
		} else {
			n++
		}
	}
	return n
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

// Split decomposes a path into its root followed by its name segments. The root is made of any
// leading separators and the first run of non-separator characters (a drive letter, a share host,
// or the first directory). Name segments never contain separators and are never empty, so repeated
// or mixed separators are collapsed. A path without any non-separator character is returned whole
// as its root.
func Split(fp Local) []string {
	i := strings.IndexFunc(fp, func(r rune) bool { return !isSeparator(r) })
	if i < 0 {
		return []string{fp}
	}
	if j := strings.IndexFunc(fp[i:], isSeparator); j >= 0 {
		i += j
	} else {
		i = len(fp)
	}
	return append([]string{fp[:i]}, strings.FieldsFunc(fp[i:], isSeparator)...)
}

// Join appends a name segment to a parent path, inserting a single separator between them. Unlike
// filepath.Join, a bare drive root such as C: is kept absolute (C:\name) and no other cleaning is
// performed.
func Join(parent Local, name string) Local {
	if parent == "" {
		return name
	}
	return WithTrailingSeparator(parent) + name
}

// WithTrailingSeparator returns the path with exactly one added separator if it did not already end
// with one.
func WithTrailingSeparator(fp Local) Local {
	if last, _ := utf8.DecodeLastRuneInString(fp); isSeparator(last) {
		return fp
	}
	return fp + string(filepath.Separator)
}
