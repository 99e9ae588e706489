package mediasherlock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autobrr/mediasherlock/pkg/mediasherlock"
)

func TestProxyAPI(t *testing.T) {
	// Smoke test to ensure the proxy can be imported and types are consistent
	var _ mediasherlock.Report
	var _ mediasherlock.Kind = mediasherlock.KindVideo

	s := mediasherlock.Summarize(mediasherlock.NewReport(map[string]any{
		"media": map[string]any{
			"track": []any{
				map[string]any{"@type": "Audio", "CodecID": "A_OPUS", "SamplingRate": "48000", "Channels": "2", "BitRate": "96000"},
			},
		},
	}))
	assert.Equal(t, []string{mediasherlock.NoVideoLine}, s.Video)
	assert.Equal(t, []string{"OPUS, 48000 kHz, 2 ch, 96 kb/s"}, s.Audio)
}
