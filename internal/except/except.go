// Package except contains invariant assertions and error logging helpers.
package except

import (
	"fmt"
	"log/slog"
)

// Must panics with the formatted message if the predicate does not hold.
func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Require panics if the error is non-nil.
func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
