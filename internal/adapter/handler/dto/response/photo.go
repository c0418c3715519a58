package response

import "github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"

// PhotoResponse has the same shape as one element of photos-manifest.json.
type PhotoResponse struct {
	ID        string        `json:"id"`
	Src       string        `json:"src"`
	SrcFull   string        `json:"srcFull,omitempty"`
	Alt       string        `json:"alt"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Tags      []string      `json:"tags"`
	CreatedAt string        `json:"createdAt,omitempty"`
	Exif      *ExifResponse `json:"exif,omitempty"`
}

type ExifResponse struct {
	Camera        string   `json:"camera,omitempty"`
	Lens          string   `json:"lens,omitempty"`
	FocalLengthMm *float64 `json:"focalLengthMm,omitempty"`
	Aperture      string   `json:"aperture,omitempty"`
	Shutter       string   `json:"shutter,omitempty"`
	ISO           *int     `json:"iso,omitempty"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

func PhotoFromEntity(p *entity.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:      p.ID,
		Src:     p.Src,
		SrcFull: p.SrcFull,
		Alt:     p.Alt,
		Width:   p.Width,
		Height:  p.Height,
		Tags:    p.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if p.CreatedAt != nil {
		resp.CreatedAt = entity.FormatTimestamp(*p.CreatedAt)
	}
	if p.Exif != nil {
		resp.Exif = &ExifResponse{
			Camera:        p.Exif.Camera,
			Lens:          p.Exif.Lens,
			FocalLengthMm: p.Exif.FocalLengthMm,
			Aperture:      p.Exif.Aperture,
			Shutter:       p.Exif.Shutter,
			ISO:           p.Exif.ISO,
		}
	}
	return resp
}

// PhotosFromEntities never returns nil so an empty gallery encodes as [].
func PhotosFromEntities(photos []entity.Photo) []PhotoResponse {
	out := make([]PhotoResponse, len(photos))
	for i := range photos {
		out[i] = PhotoFromEntity(&photos[i])
	}
	return out
}
