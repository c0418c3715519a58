package entity

import (
	"slices"
	"strings"
	"time"
)

// TimestampLayout is the wire form of CreatedAt: UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Photo struct {
	ID        string
	Src       string
	SrcFull   string
	Alt       string
	Width     int
	Height    int
	Tags      []string
	CreatedAt *time.Time
	Exif      *Exif
}

type Exif struct {
	Camera        string
	Lens          string
	FocalLengthMm *float64
	Aperture      string
	Shutter       string
	ISO           *int
}

func (e *Exif) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Camera == "" && e.Lens == "" && e.FocalLengthMm == nil &&
		e.Aperture == "" && e.Shutter == "" && e.ISO == nil
}

// SortKey is the CreatedAt instant used for ordering; records without one sort as the epoch.
func (p *Photo) SortKey() time.Time {
	if p.CreatedAt == nil {
		return time.Unix(0, 0).UTC()
	}
	return *p.CreatedAt
}

func (p *Photo) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 with or without fractional seconds, and bare dates.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeTags trims tags, drops empty ones and removes duplicates keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
