package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autobrr/mediasherlock/internal/config"
	"github.com/autobrr/mediasherlock/internal/summary"
)

type fakeSummarizer map[string]string

func (f fakeSummarizer) Summarize(_ context.Context, path string) (summary.Summary, error) {
	report, ok := f[path]
	if !ok {
		return summary.Summary{}, errors.New("mediainfo: exit status 1")
	}
	return summary.SummarizeJSON([]byte(report)), nil
}

type fakeViewer struct {
	mu      sync.Mutex
	fs      afero.Fs
	opened  []string
	content string
	err     error
}

func (v *fakeViewer) Open(_ context.Context, path string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.opened = append(v.opened, path)
	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return err
	}
	v.content = string(data)
	return v.err
}

const (
	movieJSON = `{"media": {"track": [
		{"@type": "General"},
		{"@type": "Video", "CodecID": "V_MPEG4/ISO/AVC", "Width": "1920", "Height": "1080", "DisplayAspectRatio": "1.778", "FrameRate": "23.976", "BitRate": "5000000"},
		{"@type": "Audio", "CodecID": "A_AAC", "SamplingRate": "48000", "Channels": "2", "BitRate": "128000"}
	]}}`
	songJSON = `{"media": {"track": [
		{"@type": "Audio", "CodecID": "A_FLAC", "SamplingRate": "44100", "Channels": "2", "BitRate": "900000"}
	]}}`
	movieText = "" +
		"MPEG4/ISO/AVC, 1920x1080p, 16:9, 23.976 FPS, 5000 kb/s\n" +
		"AAC, 48000 kHz, 2 ch, 128 kb/s\n"
)

func newRunner(t *testing.T, mutate func(*config.Config)) (*Runner, *bytes.Buffer, *fakeViewer) {
	t.Helper()
	color.NoColor = true

	cfg := config.DefaultConfig()
	cfg.Concurrency = 2
	cfg.OutputDir = "/tmp/sherlock"
	if mutate != nil {
		mutate(&cfg)
	}

	fs := afero.NewMemMapFs()
	var stdout bytes.Buffer
	viewer := &fakeViewer{fs: fs}
	return &Runner{
		Config:     &cfg,
		Summarizer: fakeSummarizer{"movie.mkv": movieJSON, "song.flac": songJSON, "broken.mkv": "not json"},
		Viewer:     viewer,
		Fs:         fs,
		Log:        zerolog.Nop(),
		Stdout:     &stdout,
	}, &stdout, viewer
}

func TestRunText(t *testing.T) {
	r, stdout, _ := newRunner(t, nil)

	code := r.Run(context.Background(), []string{"movie.mkv"})
	assert.Equal(t, exitOK, code)
	assert.Equal(t, movieText, stdout.String())
}

func TestRunMultipleKeepsArgumentOrder(t *testing.T) {
	r, stdout, _ := newRunner(t, nil)

	code := r.Run(context.Background(), []string{"song.flac", "movie.mkv", "broken.mkv"})
	assert.Equal(t, exitOK, code)
	assert.Equal(t, ""+
		"song.flac\n"+
		"No video track found\n"+
		"FLAC, 44100 kHz, 2 ch, 900 kb/s\n"+
		"\n"+
		"movie.mkv\n"+
		movieText+
		"\n"+
		"broken.mkv\n"+
		"No video track found\n"+
		"No audio track found\n", stdout.String())
}

func TestRunJSON(t *testing.T) {
	r, stdout, _ := newRunner(t, func(c *config.Config) { c.Output = config.OutputJSON })

	code := r.Run(context.Background(), []string{"song.flac"})
	assert.Equal(t, exitOK, code)
	assert.JSONEq(t, `{"file":"song.flac","video":["No video track found"],"audio":["FLAC, 44100 kHz, 2 ch, 900 kb/s"]}`, stdout.String())
}

func TestRunProbeFailure(t *testing.T) {
	r, stdout, _ := newRunner(t, nil)

	assert.Equal(t, exitError, r.Run(context.Background(), []string{"missing.mkv"}))
	assert.Empty(t, stdout.String())

	stdout.Reset()
	assert.Equal(t, exitError, r.Run(context.Background(), []string{"movie.mkv", "missing.mkv"}))
	assert.Equal(t, movieText, stdout.String())
}

func TestRunNoFiles(t *testing.T) {
	r, _, _ := newRunner(t, nil)
	assert.Equal(t, exitError, r.Run(context.Background(), nil))
}

func TestRunOpenRemovesFile(t *testing.T) {
	r, stdout, viewer := newRunner(t, func(c *config.Config) { c.Open = true })

	code := r.Run(context.Background(), []string{"movie.mkv"})
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout.String())

	path := filepath.Join("/tmp/sherlock", "mediainfo.txt")
	assert.Equal(t, []string{path}, viewer.opened)
	assert.Equal(t, movieText, viewer.content)

	exists, err := afero.Exists(r.Fs, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunOpenKeep(t *testing.T) {
	r, _, _ := newRunner(t, func(c *config.Config) {
		c.Open = true
		c.Keep = true
		c.OutputName = "summary.txt"
	})

	require.Equal(t, exitOK, r.Run(context.Background(), []string{"movie.mkv"}))

	data, err := afero.ReadFile(r.Fs, filepath.Join("/tmp/sherlock", "summary.txt"))
	require.NoError(t, err)
	assert.Equal(t, movieText, string(data))
}

func TestRunOpenViewerError(t *testing.T) {
	r, _, viewer := newRunner(t, func(c *config.Config) { c.Open = true })
	viewer.err = os.ErrPermission

	assert.Equal(t, exitError, r.Run(context.Background(), []string{"movie.mkv"}))

	exists, err := afero.Exists(r.Fs, filepath.Join("/tmp/sherlock", "mediainfo.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVersion(t *testing.T) {
	cases := []struct {
		version string
		want    string
	}{
		{version: "dev", want: "dev"},
		{version: "", want: "dev"},
		{version: "1.2.0", want: "v1.2.0"},
		{version: "v1.2.0", want: "v1.2.0"},
	}
	for _, tc := range cases {
		if got := FormatVersion(tc.version); got != tc.want {
			t.Fatalf("FormatVersion(%q)=%q, want %q", tc.version, got, tc.want)
		}
	}

	SetVersion("0.3.1")
	t.Cleanup(func() { appVersion = "dev" })
	var buf bytes.Buffer
	Version(&buf)
	assert.Equal(t, "mediasherlock, v0.3.1\n", buf.String())
}

func TestUsage(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	assert.Equal(t, exitError, Usage("mediasherlock", &buf))
	assert.Contains(t, buf.String(), `Usage: "mediasherlock [flags] FileName1 [FileName2...]"`)
	assert.Contains(t, buf.String(), "|_|  |_|")
}
