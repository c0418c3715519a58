package gallery

import (
	"path"
	"slices"
	"sort"
	"time"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

func indexByID(photos []entity.Photo) map[string]*entity.Photo {
	m := make(map[string]*entity.Photo, len(photos))
	for i := range photos {
		if _, ok := m[photos[i].ID]; !ok {
			m[photos[i].ID] = &photos[i]
		}
	}
	return m
}

// Merge combines freshly extracted items with the prior record set. prior is
// not modified; the result is unsorted.
func Merge(items []Extracted, prior []entity.Photo) []entity.Photo {
	byID := indexByID(prior)
	out := make([]entity.Photo, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, mergeOne(item, byID[item.ID]))
	}
	return out
}

func mergeOne(item Extracted, prev *entity.Photo) entity.Photo {
	if prev == nil {
		prev = &entity.Photo{}
	}
	meta := item.Meta
	if meta == nil {
		meta = &entity.ImageMetadata{}
	}

	p := entity.Photo{
		ID:      item.ID,
		Src:     item.Src,
		SrcFull: item.SrcFull,
		Alt:     firstNonEmpty(meta.Description, meta.Caption, prev.Alt, item.ID),
		Width:   item.Width,
		Height:  item.Height,
		Tags:    copyTags(prev.Tags),
	}
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = nonNegative(prev.Width), nonNegative(prev.Height)
	}

	switch {
	case meta.TakenAt != nil:
		p.CreatedAt = stamp(*meta.TakenAt)
	case item.ModTime != nil:
		p.CreatedAt = stamp(*item.ModTime)
	case prev.CreatedAt != nil:
		p.CreatedAt = stamp(*prev.CreatedAt)
	}

	fresh := exifFromMetadata(meta)
	p.Exif = mergeExif(&fresh, prev.Exif)

	return p
}

// MergeRemote builds records from media library resources, falling back to
// the prior record set field by field.
func MergeRemote(resources []entity.RemoteResource, prior []entity.Photo) []entity.Photo {
	sorted := slices.Clone(resources)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PublicID < sorted[j].PublicID })

	byID := indexByID(prior)
	out := make([]entity.Photo, 0, len(sorted))
	seen := make(map[string]struct{}, len(sorted))
	for _, res := range sorted {
		id := path.Base(res.PublicID)
		if id == "" || id == "." || id == "/" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, mergeRemoteOne(id, res, byID[id]))
	}
	return out
}

func mergeRemoteOne(id string, res entity.RemoteResource, prev *entity.Photo) entity.Photo {
	if prev == nil {
		prev = &entity.Photo{}
	}
	meta := res.Metadata
	if meta == nil {
		meta = &entity.ImageMetadata{}
	}

	p := entity.Photo{
		ID:      id,
		Src:     firstNonEmpty(res.DisplayURL, res.URL),
		Alt:     firstNonEmpty(meta.Description, meta.Caption, prev.Alt, id),
		Width:   nonNegative(res.Width),
		Height:  nonNegative(res.Height),
		Tags:    copyTags(prev.Tags),
		SrcFull: res.URL,
	}
	if p.SrcFull == p.Src {
		p.SrcFull = ""
	}
	if p.Width == 0 || p.Height == 0 {
		p.Width, p.Height = nonNegative(prev.Width), nonNegative(prev.Height)
	}
	// Curated tags win; library tags only seed records that have none.
	if len(p.Tags) == 0 {
		p.Tags = entity.NormalizeTags(res.Tags)
	}

	switch {
	case meta.TakenAt != nil:
		p.CreatedAt = stamp(*meta.TakenAt)
	case !res.CreatedAt.IsZero():
		p.CreatedAt = stamp(res.CreatedAt)
	case prev.CreatedAt != nil:
		p.CreatedAt = stamp(*prev.CreatedAt)
	}

	fresh := exifFromMetadata(meta)
	if merged := mergeExif(&fresh, prev.Exif); !merged.IsEmpty() {
		p.Exif = merged
	}

	return p
}

func mergeExif(fresh, prev *entity.Exif) *entity.Exif {
	if prev == nil {
		prev = &entity.Exif{}
	}
	out := &entity.Exif{
		Camera:   firstNonEmpty(fresh.Camera, prev.Camera),
		Lens:     firstNonEmpty(fresh.Lens, prev.Lens),
		Aperture: firstNonEmpty(fresh.Aperture, prev.Aperture),
		Shutter:  firstNonEmpty(fresh.Shutter, prev.Shutter),
	}
	if fresh.FocalLengthMm != nil {
		out.FocalLengthMm = copyPtr(fresh.FocalLengthMm)
	} else {
		out.FocalLengthMm = copyPtr(prev.FocalLengthMm)
	}
	if fresh.ISO != nil {
		out.ISO = copyPtr(fresh.ISO)
	} else {
		out.ISO = copyPtr(prev.ISO)
	}
	return out
}

// normalize prepares records that did not come through Merge: drops repeated
// ids keeping the first and guarantees a non-nil tag list.
func normalize(photos []entity.Photo) []entity.Photo {
	out := make([]entity.Photo, 0, len(photos))
	seen := make(map[string]struct{}, len(photos))
	for _, p := range photos {
		if p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		p.Tags = copyTags(p.Tags)
		p.CreatedAt = copyPtr(p.CreatedAt)
		if p.Exif != nil {
			e := *p.Exif
			e.FocalLengthMm = copyPtr(e.FocalLengthMm)
			e.ISO = copyPtr(e.ISO)
			p.Exif = &e
		}
		p.Width, p.Height = nonNegative(p.Width), nonNegative(p.Height)
		if p.Alt == "" {
			p.Alt = p.ID
		}
		out = append(out, p)
	}
	return out
}

func stamp(t time.Time) *time.Time {
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}

func copyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
