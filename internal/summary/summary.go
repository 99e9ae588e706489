package summary

const (
	NoVideoLine = "No video track found"
	NoAudioLine = "No audio track found"
)

// Summary holds one display line per video and audio track. Both lists are
// always non-empty.
type Summary struct {
	Video []string `json:"video"`
	Audio []string `json:"audio"`
}

func Summarize(r Report) Summary {
	videoTracks, audioTracks := Classify(r)

	s := Summary{
		Video: make([]string, 0, len(videoTracks)),
		Audio: make([]string, 0, len(audioTracks)),
	}
	for _, track := range videoTracks {
		s.Video = append(s.Video, FormatVideo(track))
	}
	for _, track := range audioTracks {
		s.Audio = append(s.Audio, FormatAudio(track))
	}

	if len(s.Video) == 0 {
		s.Video = append(s.Video, NoVideoLine)
	}
	if len(s.Audio) == 0 {
		s.Audio = append(s.Audio, NoAudioLine)
	}
	return s
}

// SummarizeJSON decodes mediainfo JSON output and summarizes it. Undecodable
// input produces the sentinel-only summary; use Decode to see the error.
func SummarizeJSON(data []byte) Summary {
	report, err := Decode(data)
	if err != nil {
		return Summarize(Report{})
	}
	return Summarize(report)
}

// Lines returns the video lines followed by the audio lines.
func (s Summary) Lines() []string {
	lines := make([]string, 0, len(s.Video)+len(s.Audio))
	lines = append(lines, s.Video...)
	lines = append(lines, s.Audio...)
	return lines
}

// Empty reports whether the summary holds only sentinel lines.
func (s Summary) Empty() bool {
	return len(s.Video) == 1 && s.Video[0] == NoVideoLine &&
		len(s.Audio) == 1 && s.Audio[0] == NoAudioLine
}
