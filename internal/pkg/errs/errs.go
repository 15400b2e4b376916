// Package errs is the single entry point to cockroachdb/errors. Sentinels are created with
// New and attached to causes with Mark, so callers match with Is while logs keep the cause
// and its stack.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that Is(err, mark) holds while keeping the original message and stack.
// A nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is also matches marks, which the standard library errors.Is does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
