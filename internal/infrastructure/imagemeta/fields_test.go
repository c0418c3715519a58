package imagemeta_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
)

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"8":       8,
		"5.6":     5.6,
		"f/4":     4,
		"1/250":   0.004,
		"12.0 mm": 12,
		"0.5":     0.5,
	}
	for in, want := range cases {
		got, ok := imagemeta.ParseNumber(in)
		require.True(t, ok, in)
		assert.InDelta(t, want, got, 1e-9, in)
	}

	for _, in := range []string{"", "abc", "1/0", "mm"} {
		_, ok := imagemeta.ParseNumber(in)
		assert.False(t, ok, in)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("exif layout is read as utc", func(t *testing.T) {
		got, ok := imagemeta.ParseDate("2023:06:01 12:00:00")
		require.True(t, ok)
		assert.True(t, want.Equal(got))
	})

	t.Run("sub-second suffix is ignored", func(t *testing.T) {
		got, ok := imagemeta.ParseDate("2023:06:01 12:00:00.42")
		require.True(t, ok)
		assert.True(t, want.Equal(got))
	})

	t.Run("zone suffix is honoured", func(t *testing.T) {
		got, ok := imagemeta.ParseDate("2023:06:01 14:00:00+02:00")
		require.True(t, ok)
		assert.True(t, want.Equal(got))
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, ok := imagemeta.ParseDate("2023-06-01T12:00:00Z")
		require.True(t, ok)
		assert.True(t, want.Equal(got))
	})

	t.Run("zeroed date is rejected", func(t *testing.T) {
		_, ok := imagemeta.ParseDate("0000:00:00 00:00:00")
		assert.False(t, ok)
	})
}

func TestFromFields(t *testing.T) {
	t.Run("maps exiftool style fields", func(t *testing.T) {
		meta := imagemeta.FromFields(map[string]string{
			"Model":                   "OM-3",
			"LensModel":               "M.Zuiko 12-45mm f/4 PRO",
			"ObjectName":              "Alpine dawn",
			"FocalLength":             "12",
			"FocalLengthIn35mmFormat": "24",
			"FNumber":                 "8",
			"ExposureTime":            "0.008",
			"ISO":                     "200",
			"DateTimeOriginal":        "2024:03:01 06:15:00",
		})

		assert.Equal(t, "OM-3", meta.Model)
		assert.Equal(t, "M.Zuiko 12-45mm f/4 PRO", meta.LensModel)
		assert.Equal(t, "Alpine dawn", meta.Caption)
		assert.Empty(t, meta.Description)
		require.NotNil(t, meta.FocalLength35mm)
		assert.InDelta(t, 24.0, *meta.FocalLength35mm, 1e-9)
		require.NotNil(t, meta.ISO)
		assert.Equal(t, 200, *meta.ISO)
		require.NotNil(t, meta.TakenAt)
		assert.Equal(t, 2024, meta.TakenAt.Year())
	})

	t.Run("falls back across date fields", func(t *testing.T) {
		meta := imagemeta.FromFields(map[string]string{
			"DateTimeOriginal": "0000:00:00 00:00:00",
			"CreateDate":       "2022:01:02 03:04:05",
		})

		require.NotNil(t, meta.TakenAt)
		assert.Equal(t, time.Date(2022, 1, 2, 3, 4, 5, 0, time.UTC), *meta.TakenAt)
	})

	t.Run("empty input yields empty metadata", func(t *testing.T) {
		assert.True(t, imagemeta.FromFields(nil).IsEmpty())
	})
}
