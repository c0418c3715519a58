package entity

import "time"

// ImageMetadata is the subset of embedded image metadata the gallery cares about.
// Every field is optional. ExposureTime is in seconds.
type ImageMetadata struct {
	Description     string
	Caption         string
	Model           string
	LensModel       string
	FocalLength     *float64
	FocalLength35mm *float64
	FNumber         *float64
	ExposureTime    *float64
	ISO             *int
	TakenAt         *time.Time
}

func (m *ImageMetadata) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.Description == "" && m.Caption == "" && m.Model == "" && m.LensModel == "" &&
		m.FocalLength == nil && m.FocalLength35mm == nil && m.FNumber == nil && m.ExposureTime == nil && m.ISO == nil &&
		m.TakenAt == nil
}

// RemoteResource is one image listed by the remote media library.
type RemoteResource struct {
	PublicID   string
	Format     string
	Width      int
	Height     int
	CreatedAt  time.Time
	URL        string
	DisplayURL string
	Tags       []string
	Metadata   *ImageMetadata
}
