package gallery

import (
	"sort"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// Sort orders photos newest first. Records without CreatedAt sort as the
// epoch; equal times fall back to id, greater first.
func Sort(photos []entity.Photo) {
	sort.SliceStable(photos, func(i, j int) bool {
		ti, tj := photos[i].SortKey(), photos[j].SortKey()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return photos[i].ID > photos[j].ID
	})
}
