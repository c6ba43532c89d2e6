package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and destination of log output.
type Options struct {
	Level      string
	Verbose    bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Setup(opts Options) (io.Closer, error) {
	return Configure(log.StandardLogger(), opts, os.Stderr)
}

// Configure applies opts to logger. Without a log file, text lines go to
// stderr; with one, JSON lines go to a size-rotated file.
func Configure(logger *log.Logger, opts Options, stderr io.Writer) (io.Closer, error) {
	level, err := resolveLevel(opts)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	if opts.File == "" {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		logger.SetOutput(stderr)
		return nopCloser{}, nil
	}

	writer := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(writer)
	return writer, nil
}

func resolveLevel(opts Options) (log.Level, error) {
	if opts.Verbose || DebugEnabled() {
		return log.DebugLevel, nil
	}
	if opts.Level == "" {
		return log.WarnLevel, nil
	}
	return log.ParseLevel(opts.Level)
}
