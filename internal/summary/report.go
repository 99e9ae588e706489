package summary

import "encoding/json"

// NA is the placeholder for fields the probe did not report.
const NA = "N/A"

type Kind string

const (
	KindVideo Kind = "Video"
	KindAudio Kind = "Audio"
)

// Report is a decoded mediainfo JSON document. Its shape is not validated;
// accessors fall back to empty results.
type Report struct {
	root any
}

// Track is a single entry of media.track.
type Track map[string]any

func Decode(data []byte) (Report, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Report{}, err
	}
	return Report{root: root}, nil
}

// NewReport wraps an already decoded JSON value.
func NewReport(root any) Report {
	return Report{root: root}
}

// Tracks returns the entries of media.track that are JSON objects, in report
// order. A missing or mistyped container yields nil.
func (r Report) Tracks() []Track {
	top, ok := r.root.(map[string]any)
	if !ok {
		return nil
	}
	media, ok := top["media"].(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := media["track"].([]any)
	if !ok {
		return nil
	}
	tracks := make([]Track, 0, len(entries))
	for _, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		tracks = append(tracks, Track(fields))
	}
	return tracks
}

// Field returns the named value when it is a string, NA otherwise.
func (t Track) Field(name string) string {
	if value, ok := t[name].(string); ok {
		return value
	}
	return NA
}

func (t Track) Kind() Kind {
	value, _ := t["@type"].(string)
	return Kind(value)
}
