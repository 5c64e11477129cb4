// Package logging builds the structured logger shared by the benchmark
// commands. Logs always go to stderr-like writers so that stdout carries
// nothing but the result line.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultLevel keeps a normal run silent.
const DefaultLevel = "warn"

// New returns a JSON logger writing to w at the named level
// (debug, info, warn or error).
func New(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
