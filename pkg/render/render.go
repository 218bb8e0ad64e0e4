// Package render formats a file's date record as plain or
// terminal-styled text: one labeled date per line, sorted by value,
// with the reconciled earliest date marked.
package render

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jjclark1982/date-scraper-go/pkg/filedate"
)

const timeLayout = "2006-01-02 15:04:05.999999999 -07:00"

var (
	pathStyle     = lipgloss.NewStyle().Bold(true)
	earliestStyle = lipgloss.NewStyle().Underline(true)
)

// Plain formats a record without styling; the earliest date is marked
// with an "(earliest)" suffix.
func Plain(r *filedate.Record) string {
	return format(r, false)
}

// Pretty formats a record for a terminal: bold path, earliest date
// underlined.
func Pretty(r *filedate.Record) string {
	return format(r, true)
}

func format(r *filedate.Record, styled bool) string {
	lines := make([]string, 0, len(r.Dates)+1)
	if styled {
		lines = append(lines, pathStyle.Render(r.Path))
	} else {
		lines = append(lines, r.Path)
	}

	for _, label := range sortedLabels(r.Dates) {
		date := r.Dates[label]
		value := date.Format(timeLayout)
		switch {
		case !date.Equal(r.Earliest):
			lines = append(lines, label+": "+value)
		case styled:
			lines = append(lines, label+": "+earliestStyle.Render(value))
		default:
			lines = append(lines, label+": "+value+" (earliest)")
		}
	}

	return strings.Join(lines, "\n")
}

// sortedLabels orders labels by timestamp value, then by label text so
// equal timestamps render deterministically.
func sortedLabels(dates map[string]time.Time) []string {
	labels := make([]string, 0, len(dates))
	for label := range dates {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, tj := dates[labels[i]], dates[labels[j]]
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return labels[i] < labels[j]
	})
	return labels
}
