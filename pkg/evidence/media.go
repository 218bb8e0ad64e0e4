package evidence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
)

type probeTags struct {
	CreationTime string `json:"creation_time"`
}

type probeOutput struct {
	Format struct {
		CreationTime string    `json:"creation_time"`
		Tags         probeTags `json:"tags"`
	} `json:"format"`
	Streams []struct {
		Index     int       `json:"index"`
		CodecType string    `json:"codec_type"`
		Tags      probeTags `json:"tags"`
	} `json:"streams"`
}

// FromMedia probes container metadata with ffprobe when the host has
// it, extracting the container-level creation_time and every
// per-stream creation_time tag. Files ffprobe cannot read, and hosts
// without ffprobe, yield no evidence.
func FromMedia(ctx context.Context, path string, tools Toolbox) Mapping {
	m := Mapping{}
	if tools == nil || !tools.Look("ffprobe") {
		return m
	}

	out, err := tools.Run(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path)
	if err != nil {
		return m
	}

	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return m
	}

	raw := probe.Format.CreationTime
	if raw == "" {
		raw = probe.Format.Tags.CreationTime
	}
	if raw != "" {
		if t, perr := dateparse.ParseAny(raw); perr == nil {
			m["Media Format Created"] = t.UTC()
		}
	}

	for _, stream := range probe.Streams {
		if stream.Tags.CreationTime == "" {
			continue
		}
		t, perr := dateparse.ParseAny(stream.Tags.CreationTime)
		if perr != nil {
			continue
		}
		label := fmt.Sprintf("%s Stream %d Created", capitalize(stream.CodecType), stream.Index)
		m[label] = t.UTC()
	}

	return m
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
