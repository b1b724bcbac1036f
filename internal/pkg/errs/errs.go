// Package errs is the one place that touches cockroachdb/errors directly.
// Call sites wrap, create and mark errors through it so stack capture and
// sentinel matching behave the same everywhere.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original stack. A nil err stays
// nil so callers can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates a stack-carrying error. Package-level sentinels use it too;
// match those with errors.Is, not string comparison.
func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an errors.Is target without changing the message.
// With a nil err the mark itself is returned.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines lines,
// for structured logs that should not carry a full dump.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
