package imagemeta

import (
	"context"
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

var (
	lensModel     = exif.FieldName("LensModel")
	dateFieldsTry = []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime}
)

// ExifReader reads embedded EXIF in pure Go. It has no IPTC support, so Caption is never set.
type ExifReader struct {
	logger *zap.Logger
}

func NewExifReader(logger *zap.Logger) *ExifReader {
	return &ExifReader{logger: logger}
}

func (r *ExifReader) ReadMetadata(ctx context.Context, path string) (*entity.ImageMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	// A broken GPS or interop sub-IFD still yields the main and EXIF tags.
	x, err := exif.Decode(f)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoMetadata, err)
	}
	if err != nil {
		r.logger.Debug("partial exif", zap.String("path", path), zap.Error(err))
	}

	meta := &entity.ImageMetadata{
		Description: stringTag(x, exif.ImageDescription),
		Model:       stringTag(x, exif.Model),
		LensModel:   stringTag(x, lensModel),
	}
	if v, ok := numberTag(x, exif.FocalLength); ok && v > 0 {
		meta.FocalLength = &v
	}
	if v, ok := numberTag(x, exif.FocalLengthIn35mmFilm); ok && v > 0 {
		meta.FocalLength35mm = &v
	}
	if v, ok := numberTag(x, exif.FNumber); ok && v > 0 {
		meta.FNumber = &v
	}
	if v, ok := numberTag(x, exif.ExposureTime); ok && v > 0 {
		meta.ExposureTime = &v
	}
	if v, ok := numberTag(x, exif.ISOSpeedRatings); ok && v > 0 {
		iso := int(v)
		meta.ISO = &iso
	}
	for _, name := range dateFieldsTry {
		if t, ok := ParseDate(stringTag(x, name)); ok {
			meta.TakenAt = &t
			break
		}
	}

	if meta.IsEmpty() {
		return nil, domain.ErrNoMetadata
	}
	return meta, nil
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil || tag.Format() != tiff.StringVal {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return trimNull(s)
}

func numberTag(x *exif.Exif, name exif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil || tag.Count == 0 {
		return 0, false
	}

	switch tag.Format() {
	case tiff.RatVal:
		num, den, err := tag.Rat2(0)
		if err != nil || den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	case tiff.IntVal:
		v, err := tag.Int(0)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	case tiff.FloatVal:
		v, err := tag.Float(0)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func trimNull(s string) string {
	for len(s) > 0 && (s[len(s)-1] == 0 || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
