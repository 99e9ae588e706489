package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/autobrr/mediasherlock/internal/config"
	"github.com/autobrr/mediasherlock/internal/output"
	"github.com/autobrr/mediasherlock/internal/summary"
)

const (
	exitOK    = 0
	exitError = 1
)

// Summarizer probes a file and summarizes its tracks.
type Summarizer interface {
	Summarize(ctx context.Context, path string) (summary.Summary, error)
}

// Opener shows a written summary file and returns once it is closed.
type Opener interface {
	Open(ctx context.Context, path string) error
}

type Runner struct {
	Config     *config.Config
	Summarizer Summarizer
	Viewer     Opener
	Fs         afero.Fs
	Log        zerolog.Logger
	Stdout     io.Writer
}

// Run summarizes files and either prints the result or opens it in the
// viewer. It returns the process exit code: non-zero when any file failed or
// nothing could be summarized.
func (r *Runner) Run(ctx context.Context, files []string) int {
	if len(files) == 0 {
		return exitError
	}

	results, failed := r.summarize(ctx, files)
	if len(results) == 0 {
		return exitError
	}

	if r.Config.Open {
		if err := r.open(ctx, results); err != nil {
			r.Log.Error().Err(err).Msg("could not show summary")
			return exitError
		}
	} else {
		rendered, err := r.render(results, heading)
		if err != nil {
			r.Log.Error().Err(err).Msg("could not render summary")
			return exitError
		}
		fmt.Fprint(r.Stdout, rendered)
	}

	if failed > 0 {
		return exitError
	}
	return exitOK
}

func (r *Runner) summarize(ctx context.Context, files []string) ([]output.Result, int) {
	summaries := make([]summary.Summary, len(files))
	errs := make([]error, len(files))

	g := new(errgroup.Group)
	g.SetLimit(max(r.Config.Concurrency, 1))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			summaries[i], errs[i] = r.Summarizer.Summarize(ctx, file)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]output.Result, 0, len(files))
	failed := 0
	for i, file := range files {
		if errs[i] != nil {
			r.Log.Error().Err(errs[i]).Str("file", file).Msg("probe failed")
			failed++
			continue
		}
		if summaries[i].Empty() {
			r.Log.Warn().Str("file", file).Msg("no video or audio tracks found")
		}
		results = append(results, output.Result{File: file, Summary: summaries[i]})
	}
	return results, failed
}

func (r *Runner) render(results []output.Result, heading func(string) string) (string, error) {
	if r.Config.Output == config.OutputJSON {
		return output.RenderJSON(results)
	}
	return output.RenderText(results, heading), nil
}

func (r *Runner) open(ctx context.Context, results []output.Result) error {
	rendered, err := r.render(results, nil)
	if err != nil {
		return err
	}

	path, err := output.WriteFile(r.Fs, r.Config.OutputDir, r.Config.OutputName, rendered)
	if err != nil {
		return err
	}
	r.Log.Debug().Str("path", path).Msg("summary written")

	openErr := r.Viewer.Open(ctx, path)
	if r.Config.Keep {
		r.Log.Info().Str("path", path).Msg("summary kept")
		return openErr
	}
	if err := output.Remove(r.Fs, path); err != nil {
		r.Log.Warn().Err(err).Str("path", path).Msg("could not remove summary file")
	}
	return openErr
}

var headingColor = color.New(color.FgCyan, color.Bold)

func heading(title string) string {
	return headingColor.Sprint(title)
}

// SetColorMode applies mode to terminal output. ColorAuto keeps the
// detection done by fatih/color.
func SetColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}
