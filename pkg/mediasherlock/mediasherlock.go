package mediasherlock

import (
	"github.com/autobrr/mediasherlock/internal/summary"
)

// Types
type Summary = summary.Summary
type Report = summary.Report
type Track = summary.Track
type Kind = summary.Kind

// Constants
const (
	KindVideo   = summary.KindVideo
	KindAudio   = summary.KindAudio
	NA          = summary.NA
	NoVideoLine = summary.NoVideoLine
	NoAudioLine = summary.NoAudioLine
)

// Functions
func Decode(data []byte) (Report, error) {
	return summary.Decode(data)
}

func NewReport(root any) Report {
	return summary.NewReport(root)
}

func Classify(r Report) (video, audio []Track) {
	return summary.Classify(r)
}

func Summarize(r Report) Summary {
	return summary.Summarize(r)
}

func SummarizeJSON(data []byte) Summary {
	return summary.SummarizeJSON(data)
}

// Formatting
func FormatVideo(t Track) string {
	return summary.FormatVideo(t)
}

func FormatAudio(t Track) string {
	return summary.FormatAudio(t)
}

func AspectRatio(raw string) string {
	return summary.AspectRatio(raw)
}

func BitRate(raw string) string {
	return summary.BitRate(raw)
}

func StripCodecPrefix(id string) string {
	return summary.StripCodecPrefix(id)
}
