package filestore

import (
	"encoding/json"
	"fmt"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// Record is one element of the manifest array. Field order matches the
// published file.
type Record struct {
	ID        string      `json:"id"`
	Src       string      `json:"src"`
	SrcFull   string      `json:"srcFull,omitempty"`
	Alt       string      `json:"alt"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Tags      []string    `json:"tags"`
	CreatedAt string      `json:"createdAt,omitempty"`
	Exif      *ExifRecord `json:"exif,omitempty"`
}

type ExifRecord struct {
	Camera        string   `json:"camera,omitempty"`
	Lens          string   `json:"lens,omitempty"`
	FocalLengthMm *float64 `json:"focalLengthMm,omitempty"`
	Aperture      string   `json:"aperture,omitempty"`
	Shutter       string   `json:"shutter,omitempty"`
	ISO           *int     `json:"iso,omitempty"`
}

func ToRecord(p entity.Photo) Record {
	r := Record{
		ID:      p.ID,
		Src:     p.Src,
		SrcFull: p.SrcFull,
		Alt:     p.Alt,
		Width:   p.Width,
		Height:  p.Height,
		Tags:    p.Tags,
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if p.CreatedAt != nil {
		r.CreatedAt = entity.FormatTimestamp(*p.CreatedAt)
	}
	if p.Exif != nil {
		r.Exif = &ExifRecord{
			Camera:        p.Exif.Camera,
			Lens:          p.Exif.Lens,
			FocalLengthMm: p.Exif.FocalLengthMm,
			Aperture:      p.Exif.Aperture,
			Shutter:       p.Exif.Shutter,
			ISO:           p.Exif.ISO,
		}
	}
	return r
}

func (r Record) ToEntity() entity.Photo {
	p := entity.Photo{
		ID:      r.ID,
		Src:     r.Src,
		SrcFull: r.SrcFull,
		Alt:     r.Alt,
		Width:   max(r.Width, 0),
		Height:  max(r.Height, 0),
		Tags:    r.Tags,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if t, ok := entity.ParseTimestamp(r.CreatedAt); ok {
		p.CreatedAt = &t
	}
	if r.Exif != nil {
		p.Exif = &entity.Exif{
			Camera:        r.Exif.Camera,
			Lens:          r.Exif.Lens,
			FocalLengthMm: r.Exif.FocalLengthMm,
			Aperture:      r.Exif.Aperture,
			Shutter:       r.Exif.Shutter,
			ISO:           r.Exif.ISO,
		}
	}
	return p
}

// Decode parses a manifest. Only a document that is not a JSON array is an
// error; elements that do not fit Record, or lack an id, are dropped and
// counted.
func Decode(data []byte) ([]entity.Photo, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decoding manifest: %w", err)
	}

	photos := make([]entity.Photo, 0, len(raw))
	dropped := 0
	for _, elem := range raw {
		var r Record
		if err := json.Unmarshal(elem, &r); err != nil || r.ID == "" {
			dropped++
			continue
		}
		photos = append(photos, r.ToEntity())
	}
	return photos, dropped, nil
}

// Encode renders photos as a two-space indented array with a trailing newline.
func Encode(photos []entity.Photo) ([]byte, error) {
	records := make([]Record, len(photos))
	for i, p := range photos {
		records[i] = ToRecord(p)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}
