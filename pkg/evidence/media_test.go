package evidence

import (
	"context"
	"errors"
	"testing"
	"time"
)

const probeArgs = " -v quiet -print_format json -show_format -show_streams "

func TestFromMedia_FormatAndStreams(t *testing.T) {
	probe := `{
		"format": {"tags": {"creation_time": "2023-01-02T03:04:05.000000Z"}},
		"streams": [
			{"index": 0, "codec_type": "video", "tags": {"creation_time": "2023-01-02T03:04:05.000000Z"}},
			{"index": 1, "codec_type": "audio", "tags": {"creation_time": "2023-01-02T03:04:06.000000Z"}},
			{"index": 2, "codec_type": "data"}
		]
	}`
	tools := &fakeToolbox{
		tools:   map[string]bool{"ffprobe": true},
		outputs: map[string][]byte{"ffprobe" + probeArgs + "clip.mp4": []byte(probe)},
	}

	got := FromMedia(context.Background(), "clip.mp4", tools)

	want := map[string]time.Time{
		"Media Format Created":   time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
		"Video Stream 0 Created": time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
		"Audio Stream 1 Created": time.Date(2023, 1, 2, 3, 4, 6, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected evidence\n got: %v\nwant: %v", got, want)
	}
	for label, wantTime := range want {
		if d, ok := got[label]; !ok || !d.Equal(wantTime) {
			t.Fatalf("unexpected %q: %v (found=%v)", label, d, ok)
		}
	}
}

func TestFromMedia_ToolAbsent(t *testing.T) {
	got := FromMedia(context.Background(), "clip.mp4", &fakeToolbox{})
	if len(got) != 0 {
		t.Fatalf("expected no evidence without ffprobe, got %v", got)
	}
}

func TestFromMedia_ToolFailure(t *testing.T) {
	tools := &fakeToolbox{
		tools: map[string]bool{"ffprobe": true},
		errs:  map[string]error{"ffprobe" + probeArgs + "clip.mp4": errors.New("timeout")},
	}
	got := FromMedia(context.Background(), "clip.mp4", tools)
	if len(got) != 0 {
		t.Fatalf("expected no evidence on tool failure, got %v", got)
	}
}

func TestFromMedia_GarbageOutput(t *testing.T) {
	tools := &fakeToolbox{
		tools:   map[string]bool{"ffprobe": true},
		outputs: map[string][]byte{"ffprobe" + probeArgs + "clip.mp4": []byte("not json")},
	}
	got := FromMedia(context.Background(), "clip.mp4", tools)
	if len(got) != 0 {
		t.Fatalf("expected no evidence for unparseable output, got %v", got)
	}
}
