// Package logging builds the zerolog logger used across mediasherlock.
// Console output goes to stderr so stdout only carries summaries.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/autobrr/mediasherlock/internal/config"
)

// Logger is a zerolog.Logger with an optional rotating file sink. Call Close
// when done.
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

func NewLogger(cfg *config.Config, stderr io.Writer) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.DateTime,
		NoColor:    !colorEnabled(cfg.Color, stderr),
	}

	l := &Logger{}
	var out io.Writer = console
	if cfg.Log.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		}
		out = zerolog.MultiLevelWriter(console, l.file)
	}

	l.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func colorEnabled(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
