// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a small set of error helpers on top of the
// standard library errors package, with logging functions that record
// the caller so that fail-soft paths leave a usable trail.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text, per [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target, per [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, per [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors into one, per [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err, per
// [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Log logs the given error if it is non-nil and returns it unchanged,
// annotated with the calling function. It is intended for fail-soft code
// paths that record an error without escalating it.
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error() + " | " + CallerInfo())
	return err
}

// Log1 is a version of [Log] that takes an additional value, for wrapping
// single-value-and-error function calls inline.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Ignore1 returns only the value from a single-value-and-error call,
// discarding the error. Use only where the error genuinely does not matter.
func Ignore1[T any](v T, _ error) T {
	return v
}

// Must panics if the given error is non-nil. It is for startup wiring
// where continuing without the value is impossible.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// CallerInfo returns the file, line, and function of the caller of the
// function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("%s:%d", file, line)
	}
	return fmt.Sprintf("%s (%s:%d)", fn.Name(), file, line)
}
