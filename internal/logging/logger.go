// Package logging wraps go.uber.org/zap with the Init/SetLevel entry points
// the simulator's CLI uses. Init also installs its logger as zap's global,
// but the simulator itself receives the logger explicitly (dagsim.New,
// process.Run) rather than reading zap.L().
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Init installs a console-encoded zap logger as the package-level default
// (zap.L()), writing to stdout with ISO8601 timestamps and capitalized,
// uncolored level names.
// It returns the constructed logger; callers that want a handle scoped to a
// particular run (see WithRunID) should keep it rather than calling zap.L()
// repeatedly.
func Init(verbose bool) *zap.Logger {
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "t"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), level)
	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger
}

// SetLevel adjusts the installed logger's level at runtime, mirroring the
// original logger::set_level.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// WithRunID returns a child logger tagging every subsequent line with a
// short run-correlation ID, the same truncated-UUID convention used for
// cross-request correlation elsewhere in the retrieved example corpus.
func WithRunID(logger *zap.Logger, runID string) *zap.Logger {
	return logger.With(zap.String("run", runID))
}
