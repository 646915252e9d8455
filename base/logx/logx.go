// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a thin leveled front-end over [log/slog] for
// user-facing messages. The library itself logs through slog directly;
// logx gates chattier output behind UserLevel so that embedding
// applications control verbosity in one place.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the current user-facing logging level. Anything below
// this level is dropped by the Print helpers.
var UserLevel = defaultUserLevel

// PrintDebug logs the message at [slog.LevelDebug] if UserLevel permits.
func PrintDebug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(fmt.Sprintf(msg, args...))
	}
}

// PrintInfo logs the message at [slog.LevelInfo] if UserLevel permits.
func PrintInfo(msg string, args ...any) {
	if UserLevel <= slog.LevelInfo {
		slog.Info(fmt.Sprintf(msg, args...))
	}
}

// PrintWarn logs the message at [slog.LevelWarn] if UserLevel permits.
func PrintWarn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		slog.Warn(fmt.Sprintf(msg, args...))
	}
}

// PrintError logs the message at [slog.LevelError]. Errors are always
// printed regardless of UserLevel.
func PrintError(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...))
}
