// Package output renders summaries and writes them to the summary file shown
// by the viewer.
package output

import (
	"encoding/json"
	"strings"

	"github.com/autobrr/mediasherlock/internal/summary"
)

// Result is the summary of one input file.
type Result struct {
	File    string
	Summary summary.Summary
}

type jsonResult struct {
	File  string   `json:"file"`
	Video []string `json:"video"`
	Audio []string `json:"audio"`
}

// RenderText writes one line per track, video lines first. With more than
// one result every block is headed by its file name; heading may decorate it
// and may be nil.
func RenderText(results []Result, heading func(string) string) string {
	var buf strings.Builder
	for i, result := range results {
		if len(results) > 1 {
			if i > 0 {
				buf.WriteString("\n")
			}
			title := result.File
			if heading != nil {
				title = heading(title)
			}
			buf.WriteString(title)
			buf.WriteString("\n")
		}
		for _, line := range result.Summary.Lines() {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

// RenderJSON renders a single result as an object and several as an array.
func RenderJSON(results []Result) (string, error) {
	payload := make([]jsonResult, 0, len(results))
	for _, result := range results {
		payload = append(payload, jsonResult{
			File:  result.File,
			Video: result.Summary.Video,
			Audio: result.Summary.Audio,
		})
	}

	var (
		data []byte
		err  error
	)
	if len(payload) == 1 {
		data, err = json.MarshalIndent(payload[0], "", "  ")
	} else {
		data, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
