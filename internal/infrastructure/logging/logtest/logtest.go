// Package logtest builds loggers for tests.
package logtest

import (
	"log/slog"
	"testing"

	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zaptest"
)

// New routes log output through t.Log so it only shows up for failing tests.
func New(t testing.TB) *slog.Logger {
	return slog.New(zapslog.NewHandler(zaptest.NewLogger(t).Core()))
}
