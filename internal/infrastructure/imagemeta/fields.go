package imagemeta

import (
	"strconv"
	"strings"
	"time"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

const exifDateLayout = "2006:01:02 15:04:05"

var (
	descriptionKeys = []string{"ImageDescription", "Description"}
	captionKeys     = []string{"ObjectName", "Title", "Caption-Abstract"}
	lensKeys        = []string{"LensModel", "Lens", "LensID"}
	focal35Keys     = []string{"FocalLengthIn35mmFormat", "FocalLengthIn35mmFilm"}
	isoKeys         = []string{"ISO", "ISOSpeedRatings", "PhotographicSensitivity"}
	takenAtKeys     = []string{"DateTimeOriginal", "CreateDate", "DateTimeDigitized", "ModifyDate", "DateTime"}
)

// FromFields maps a flat tag-name to value listing, as produced by exiftool or
// a media library's image_metadata, onto ImageMetadata. Values that do not parse
// are left absent.
func FromFields(fields map[string]string) *entity.ImageMetadata {
	meta := &entity.ImageMetadata{
		Description: first(fields, descriptionKeys),
		Caption:     first(fields, captionKeys),
		Model:       strings.TrimSpace(fields["Model"]),
		LensModel:   first(fields, lensKeys),
	}

	if v, ok := ParseNumber(fields["FocalLength"]); ok && v > 0 {
		meta.FocalLength = &v
	}
	if v, ok := ParseNumber(first(fields, focal35Keys)); ok && v > 0 {
		meta.FocalLength35mm = &v
	}
	if v, ok := ParseNumber(fields["FNumber"]); ok && v > 0 {
		meta.FNumber = &v
	}
	if v, ok := ParseNumber(fields["ExposureTime"]); ok && v > 0 {
		meta.ExposureTime = &v
	}
	if v, ok := ParseNumber(first(fields, isoKeys)); ok && v > 0 {
		iso := int(v)
		meta.ISO = &iso
	}
	for _, key := range takenAtKeys {
		if t, ok := ParseDate(fields[key]); ok {
			meta.TakenAt = &t
			break
		}
	}

	return meta
}

func first(fields map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(fields[k]); v != "" {
			return v
		}
	}
	return ""
}

// ParseNumber accepts plain decimals, fractions such as "1/250", an "f/" prefix
// and a trailing unit such as "12.0 mm".
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "f/"), "F/")
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	if s == "" {
		return 0, false
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDate parses an EXIF "YYYY:MM:DD HH:MM:SS" date, with optional sub-second
// or zone suffix, and RFC 3339. EXIF dates carry no zone and are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(exifDateLayout) {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range []string{"2006:01:02 15:04:05Z07:00", "2006:01:02 15:04:05-0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	t, err := time.ParseInLocation(exifDateLayout, s[:len(exifDateLayout)], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
