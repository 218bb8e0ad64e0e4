package evidence

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/jjclark1982/date-scraper-go/pkg/parse"
)

var exifDateTags = []exif.FieldName{
	exif.DateTime,
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
}

// previewDateTimeID is the DNG PreviewDateTime tag. goexif's field
// dictionary does not know it, so it is read from the raw IFD tags.
const previewDateTimeID = 0xC71B

// FromImage reads embedded date tags from an image file, labeled
// "Exif <TagName>", plus a GPS-stamped date under "Exif GPSDateStamp".
// Files that do not decode as images yield no evidence; most files are
// not images.
func FromImage(path string) (m Mapping) {
	m = Mapping{}

	// goexif panics on some malformed structures; a corrupt image
	// yields no evidence instead of aborting the batch.
	defer func() {
		if recover() != nil {
			m = Mapping{}
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return m
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return m
	}

	for _, tag := range exifDateTags {
		if t, ok := exifTime(x, tag); ok {
			m["Exif "+string(tag)] = t
		}
	}
	if t, ok := previewDateTime(x); ok {
		m["Exif PreviewDateTime"] = t
	}
	if t, ok := gpsTime(x); ok {
		m["Exif GPSDateStamp"] = t
	}
	return m
}

func exifTime(x *exif.Exif, tag exif.FieldName) (time.Time, bool) {
	field, err := x.Get(tag)
	if err != nil {
		return time.Time{}, false
	}
	s, err := field.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	return parseExifString(s)
}

// parseExifString tries the EXIF DateTime layout first; odd writers
// get the text parser.
func parseExifString(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation("2006:01:02 15:04:05", s, time.UTC); err == nil {
		return t, true
	}
	return parse.Text(s)
}

func previewDateTime(x *exif.Exif) (time.Time, bool) {
	if x.Tiff == nil {
		return time.Time{}, false
	}
	for _, dir := range x.Tiff.Dirs {
		for _, tag := range dir.Tags {
			if tag.Id != previewDateTimeID {
				continue
			}
			s, err := tag.StringVal()
			if err != nil {
				return time.Time{}, false
			}
			return parseExifString(s)
		}
	}
	return time.Time{}, false
}

// gpsTime combines GPSDateStamp with the GPSTimeStamp rationals when
// both are present and well-formed; the date stamp alone is still
// evidence.
func gpsTime(x *exif.Exif) (time.Time, bool) {
	field, err := x.Get(exif.GPSDateStamp)
	if err != nil {
		return time.Time{}, false
	}
	s, err := field.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006:01:02", s, time.UTC)
	if err != nil {
		var ok bool
		if t, ok = parse.Text(s); !ok {
			return time.Time{}, false
		}
	}

	if stamp, serr := x.Get(exif.GPSTimeStamp); serr == nil {
		var clock [3]float64
		valid := true
		for i := range clock {
			// Rat2 avoids big.Rat, which panics on a zero
			// denominator in corrupt camera metadata.
			num, den, rerr := stamp.Rat2(i)
			if rerr != nil || den == 0 {
				valid = false
				break
			}
			clock[i] = float64(num) / float64(den)
		}
		if valid {
			t = t.Add(time.Duration(clock[0]*float64(time.Hour)) +
				time.Duration(clock[1]*float64(time.Minute)) +
				time.Duration(clock[2]*float64(time.Second)))
		}
	}

	return t, true
}
