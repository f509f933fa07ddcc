// Package errors is the single errors import of the service. It re-exports
// the stdlib tree helpers and the pkg/errors stack-carrying constructors, and
// adds the lookup helpers the repositories and use cases share.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Translate returns to when err matches from, and err wrapped with message otherwise.
// It is how a driver's not-found sentinel becomes a repository sentinel.
func Translate(err, from, to error, message string) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, from) {
		return to
	}

	return pkgerrors.Wrap(err, message)
}

// Optional drops err when it matches notFound, for lookups whose absence is
// not a failure. Any other error is wrapped with message.
func Optional(err, notFound error, message string) error {
	if err == nil || stderrors.Is(err, notFound) {
		return nil
	}

	return pkgerrors.Wrap(err, message)
}
