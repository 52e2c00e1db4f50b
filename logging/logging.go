// Package logging builds the zerolog loggers used by acoroute.
//
// Library packages never log on their own; they accept an optional
// *zerolog.Logger. Only cmd/ decides where output goes.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// RunIDField is the field carrying the per-run identifier.
const RunIDField = "run_id"

// ErrUnknownFormat is returned for a format other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// ErrUnknownLevel is returned for a level zerolog cannot parse.
var ErrUnknownLevel = errors.New("logging: unknown level")

// New returns a logger writing to w at the given level ("debug", "info", ...).
// An empty level means info.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name onto zerolog's levels.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	return lvl, nil
}

// WithRunID tags every event of l with id.
func WithRunID(l zerolog.Logger, id string) zerolog.Logger {
	return l.With().Str(RunIDField, id).Logger()
}
