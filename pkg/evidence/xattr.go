package evidence

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jjclark1982/date-scraper-go/pkg/parse"
)

var reDateAttr = regexp.MustCompile(`(?i)date|time`)

// FromXattr enumerates extended attributes whose names mention a date
// or time and runs the text parser over each value, labeled
// "Xattr <name>". Values that are not decodable text are skipped;
// they are assumed to hold binary-encoded payloads.
func FromXattr(ctx context.Context, path string, tools Toolbox) Mapping {
	m := Mapping{}
	if tools == nil || !tools.Look("xattr") {
		return m
	}

	out, err := tools.Run(ctx, "xattr", path)
	if err != nil {
		return m
	}

	for _, name := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		name = strings.TrimSpace(name)
		if name == "" || !reDateAttr.MatchString(name) {
			continue
		}
		value, runErr := tools.Run(ctx, "xattr", "-p", name, path)
		if runErr != nil || !utf8.Valid(value) {
			continue
		}
		if t, ok := parse.Text(strings.TrimSpace(string(value))); ok {
			m["Xattr "+name] = t
		}
	}

	return m
}
