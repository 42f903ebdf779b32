// Package logger builds the zap logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log level and encoding.
type Options struct {
	// Level is a zap level name: debug, info, warn or error. Empty means warn,
	// which keeps a normal conversion quiet apart from its report.
	Level string
	// JSON switches from console lines to JSON objects.
	JSON bool
	// Out receives log output. Nil means os.Stderr.
	Out io.Writer
}

// New builds a logger named "addrbook". Caller information is added only
// at debug level.
func New(opts Options) (*zap.Logger, error) {
	levelName := opts.Level
	if levelName == "" {
		levelName = "warn"
	}
	level, err := zap.ParseAtomicLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	core := zapcore.NewCore(encoder(opts.JSON), zapcore.Lock(zapcore.AddSync(out)), level)
	zopts := []zap.Option{}
	if level.Level() == zapcore.DebugLevel {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(core, zopts...).Named("addrbook"), nil
}

func encoder(json bool) zapcore.Encoder {
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
