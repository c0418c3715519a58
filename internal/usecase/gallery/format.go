package gallery

import (
	"math"
	"strconv"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

func formatAperture(fnumber float64) string {
	return "f/" + formatDecimal(fnumber, 1)
}

// formatShutter writes exposures below one second as a fraction when the
// reciprocal is close to a whole number, e.g. 0.004 as "1/250s".
func formatShutter(seconds float64) string {
	if seconds >= 1 {
		return formatDecimal(seconds, 1) + "s"
	}
	recip := 1 / seconds
	whole := math.Round(recip)
	if whole >= 1 && math.Abs(recip-whole)/recip < 0.05 {
		return "1/" + strconv.FormatFloat(whole, 'f', 0, 64) + "s"
	}
	return formatDecimal(seconds, 3) + "s"
}

func formatDecimal(v float64, places int) string {
	p := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}

// exifFromMetadata converts raw metadata to the display form. The result may be empty.
func exifFromMetadata(meta *entity.ImageMetadata) entity.Exif {
	var e entity.Exif
	if meta == nil {
		return e
	}

	e.Camera = meta.Model
	e.Lens = meta.LensModel

	focal := meta.FocalLength35mm
	if focal == nil {
		focal = meta.FocalLength
	}
	if focal != nil && *focal > 0 {
		v := math.Round(*focal*100) / 100
		e.FocalLengthMm = &v
	}
	if meta.FNumber != nil && *meta.FNumber > 0 {
		e.Aperture = formatAperture(*meta.FNumber)
	}
	if meta.ExposureTime != nil && *meta.ExposureTime > 0 {
		e.Shutter = formatShutter(*meta.ExposureTime)
	}
	if meta.ISO != nil && *meta.ISO > 0 {
		iso := *meta.ISO
		e.ISO = &iso
	}
	return e
}
