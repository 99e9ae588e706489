package summary

// Classify splits the report's tracks into video and audio tracks, keeping
// report order. Tracks of any other @type are dropped.
func Classify(r Report) (video, audio []Track) {
	for _, track := range r.Tracks() {
		switch track.Kind() {
		case KindVideo:
			video = append(video, track)
		case KindAudio:
			audio = append(audio, track)
		}
	}
	return video, audio
}
