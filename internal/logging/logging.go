package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"linkharvest/internal/config"
)

// Setup builds the application logger: console output plus a rotating
// error-log file that captures per-URL crawl failures.
func Setup(cfg config.LoggingConfig) (zerolog.Logger, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return zerolog.Nop(), err
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	errorFile := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, "error_log.txt"),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	writer := zerolog.MultiLevelWriter(
		console,
		&levelWriter{w: errorFile, min: zerolog.ErrorLevel},
	)

	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, nil
}

// levelWriter forwards only entries at or above min to the wrapped writer.
type levelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw *levelWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw *levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= lw.min {
		return lw.w.Write(p)
	}
	return len(p), nil
}

// Sink records per-URL crawl failures on the error logger. Entries are
// fire-and-forget; failures in logging itself are ignored.
type Sink struct {
	log zerolog.Logger
}

// NewSink returns a Sink writing through the given logger.
func NewSink(log zerolog.Logger) *Sink {
	return &Sink{log: log}
}

// LogError appends one failure entry for url.
func (s *Sink) LogError(url, message string) {
	s.log.Error().Str("url", url).Msg(message)
}
