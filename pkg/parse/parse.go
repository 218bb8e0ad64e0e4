package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"github.com/jjclark1982/date-scraper-go/pkg/reconcile"
)

// Kind names the heuristic that produced a candidate timestamp.
type Kind string

const (
	KindTimestamp Kind = "Timestamp"
	KindUUID      Kind = "UUID"
	KindDate      Kind = "Date"
)

var (
	// Unix timestamps starting with "1" cover roughly 2001-2286 for
	// 10-digit values, which keeps false positives from IDs and
	// resolutions low without full parsing.
	reEpochMillis = regexp.MustCompile(`\b1\d{12}\b`)
	reEpochSecs   = regexp.MustCompile(`\b1\d{9}\b`)

	reUUID = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}`)

	// A 4-digit year followed by up to 5 more short numeric fields,
	// anchored in parentheses or at the edges of the string.
	reStructured = regexp.MustCompile(`(?:\(|^)((?:19|20)\d{2}(?:[\s.:/-]\d{1,2}){0,5})(?:\)|$|\.)`)
	reNonDigit   = regexp.MustCompile(`\D`)
	reYearRun    = regexp.MustCompile(`\b(?:19|20)\d{2}[\d./-]*\b`)
)

// Epoch finds a bare Unix timestamp in s. A 13-digit value beginning
// with "1" (millisecond precision, typical of web/JS tooling) is
// checked before a 10-digit value beginning with "1" (second
// precision, typical of imageboard uploads). Only the first match is
// used.
func Epoch(s string) (time.Time, bool) {
	if m := reEpochMillis.FindString(s); m != "" {
		ms, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	if m := reEpochSecs.FindString(s); m != "" {
		secs, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(secs, 0).UTC(), true
	}
	return time.Time{}, false
}

// UUID finds a UUID-shaped substring and, when it is a version 1
// (time-based) UUID, decodes its 60-bit timestamp from the Gregorian
// epoch (1582-10-15) to Unix time. Versions 2-5 carry no usable
// creation timestamp and yield no date.
func UUID(s string) (time.Time, bool) {
	m := reUUID.FindString(s)
	if m == "" {
		return time.Time{}, false
	}
	id, err := uuid.Parse(m)
	if err != nil || id.Version() != 1 {
		return time.Time{}, false
	}
	// uuid.Time counts 100ns ticks since 1582-10-15; UnixTime applies
	// the 0x01B21DD213814000 tick offset to the Unix epoch.
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC(), true
}

// Text finds a date written out in s.
//
// It first looks for a structured run: a 19xx/20xx year followed by up
// to 5 more numeric fields, anchored in parentheses or spanning the
// whole string. The field count decides the interpretation: 6 is a
// full date+time, 3 a date, 2 a year+month normalized to the last day
// of that month, 1 a bare year normalized to December 31. Month-only
// and year-only forms round to their latest bound so earliest-date
// reconciliation does not under-state a file's age.
//
// If no structured run matches, the first year-anchored numeric run
// anywhere in s is handed to a fuzzy-disabled generic parser, and the
// result is accepted only when plausible.
func Text(s string) (time.Time, bool) {
	if m := reStructured.FindStringSubmatch(s); m != nil {
		if t, ok := fromFields(reNonDigit.Split(m[1], -1)); ok {
			return t, true
		}
	}

	if m := reYearRun.FindString(s); m != "" {
		m = strings.Trim(m, "./-")
		t, err := dateparse.ParseIn(m, time.UTC)
		if err == nil && reconcile.Plausible(t.UTC(), time.Now()) {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func fromFields(fields []string) (time.Time, bool) {
	n := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}

	switch len(n) {
	case 6:
		if !validDate(n[0], n[1], n[2]) || n[3] > 23 || n[4] > 59 || n[5] > 59 {
			return time.Time{}, false
		}
		return time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, time.UTC), true
	case 3:
		if !validDate(n[0], n[1], n[2]) {
			return time.Time{}, false
		}
		return time.Date(n[0], time.Month(n[1]), n[2], 0, 0, 0, 0, time.UTC), true
	case 2:
		if n[1] < 1 || n[1] > 12 {
			return time.Time{}, false
		}
		// Only month granularity is known: mark as the last day of it.
		return time.Date(n[0], time.Month(n[1]), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 1, -1), true
	case 1:
		// Only the year is known: mark as its last day.
		return time.Date(n[0], time.December, 31, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day
}
