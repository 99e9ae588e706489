// Package viewer opens the summary file in a text viewer.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var ErrNoViewer = errors.New("no viewer command configured")

// Command returns the viewer command line. A configured command wins;
// otherwise the platform default is used: notepad on Windows, TextEdit via
// `open -W` on macOS, and $VISUAL, $EDITOR or xdg-open elsewhere.
func Command(configured []string, goos string) []string {
	if len(configured) > 0 {
		return configured
	}
	switch goos {
	case "windows":
		return []string{"notepad.exe"}
	case "darwin":
		return []string{"open", "-W", "-t"}
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"xdg-open"}
}

type Viewer struct {
	argv []string
	// start runs the viewer and blocks until it exits.
	start func(ctx context.Context, argv []string) error
}

func New(argv []string) *Viewer {
	return &Viewer{argv: argv, start: run}
}

// Open shows path and waits for the viewer to exit.
func (v *Viewer) Open(ctx context.Context, path string) error {
	if len(v.argv) == 0 {
		return ErrNoViewer
	}
	argv := append(append([]string{}, v.argv...), path)
	if err := v.start(ctx, argv); err != nil {
		return fmt.Errorf("viewer %s: %w", v.argv[0], err)
	}
	return nil
}

func run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
