package summary

import "fmt"

func FormatVideo(t Track) string {
	return fmt.Sprintf("%s, %sx%sp, %s, %s FPS, %s",
		StripCodecPrefix(t.Field("CodecID")),
		t.Field("Width"),
		t.Field("Height"),
		AspectRatio(t.Field("DisplayAspectRatio")),
		t.Field("FrameRate"),
		BitRate(t.Field("BitRate")),
	)
}

func FormatAudio(t Track) string {
	return fmt.Sprintf("%s, %s kHz, %s ch, %s",
		StripCodecPrefix(t.Field("CodecID")),
		t.Field("SamplingRate"),
		t.Field("Channels"),
		BitRate(t.Field("BitRate")),
	)
}
