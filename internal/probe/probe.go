package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autobrr/mediasherlock/internal/summary"
)

const DefaultBinary = "mediainfo"

var (
	// ErrNotFound is returned when the mediainfo binary cannot be located.
	ErrNotFound = errors.New("mediainfo binary not found")
	// ErrTimeout is returned when mediainfo does not finish within the timeout.
	ErrTimeout = errors.New("mediainfo timed out")
)

// runFunc executes name with args and returns stdout and stderr.
type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

type Prober struct {
	Binary  string
	Timeout time.Duration

	log zerolog.Logger
	run runFunc
}

func New(binary string, timeout time.Duration, log zerolog.Logger) *Prober {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Prober{
		Binary:  binary,
		Timeout: timeout,
		log:     log.With().Str("component", "probe").Logger(),
		run:     runCommand,
	}
}

// Probe runs `mediainfo <path> --Output=JSON` and returns the raw output.
func (p *Prober) Probe(ctx context.Context, path string) ([]byte, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	start := time.Now()
	stdout, stderr, err := p.run(ctx, p.Binary, path, "--Output=JSON")
	log := p.log.With().Str("file", path).Str("binary", p.Binary).Dur("elapsed", time.Since(start)).Logger()
	if err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			err = ErrNotFound
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = ErrTimeout
		default:
			if msg := strings.TrimSpace(string(stderr)); msg != "" {
				err = fmt.Errorf("%w: %s", err, msg)
			}
		}
		log.Debug().Err(err).Msg("probe failed")
		return nil, fmt.Errorf("mediainfo %q: %w", path, err)
	}

	log.Debug().Int("bytes", len(stdout)).Msg("probe finished")
	return stdout, nil
}

// Summarize probes path and summarizes the report. A report that cannot be
// decoded still yields the sentinel summary; the decode error is logged.
func (p *Prober) Summarize(ctx context.Context, path string) (summary.Summary, error) {
	data, err := p.Probe(ctx, path)
	if err != nil {
		return summary.Summary{}, err
	}

	report, err := summary.Decode(data)
	if err != nil {
		p.log.Warn().Err(err).Str("file", path).Msg("unreadable mediainfo report")
	}
	return summary.Summarize(report), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
