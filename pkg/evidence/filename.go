package evidence

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jjclark1982/date-scraper-go/pkg/parse"
)

var nameParsers = []struct {
	kind parse.Kind
	fn   func(string) (time.Time, bool)
}{
	{parse.KindTimestamp, parse.Epoch},
	{parse.KindUUID, parse.UUID},
	{parse.KindDate, parse.Text},
}

// FromFilename applies every candidate parser to the file's base name
// (without extension) and to its containing directory name, labeling
// each hit "<Kind> in Filename" or "<Kind> in Folder name".
func FromFilename(path string) Mapping {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	base := filepath.Base(abs)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	folder := filepath.Base(filepath.Dir(abs))

	m := Mapping{}
	addNameCandidates(m, stem, "Filename")
	addNameCandidates(m, folder, "Folder name")
	return m
}

func addNameCandidates(m Mapping, name, where string) {
	for _, p := range nameParsers {
		if t, ok := p.fn(name); ok {
			m[string(p.kind)+" in "+where] = t
		}
	}
}
