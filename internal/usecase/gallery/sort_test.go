package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

func TestSort(t *testing.T) {
	t.Run("newest first with undated last", func(t *testing.T) {
		photos := []entity.Photo{
			{ID: "undated"},
			{ID: "january", CreatedAt: ts(t, "2024-01-01")},
			{ID: "march", CreatedAt: ts(t, "2024-03-01")},
		}

		gallery.Sort(photos)

		assert.Equal(t, []string{"march", "january", "undated"}, ids(photos))
	})

	t.Run("equal times break ties by greater id first", func(t *testing.T) {
		photos := []entity.Photo{
			{ID: "alpha", CreatedAt: ts(t, "2024-01-01")},
			{ID: "beta", CreatedAt: ts(t, "2024-01-01")},
		}

		gallery.Sort(photos)

		assert.Equal(t, []string{"beta", "alpha"}, ids(photos))
	})

	t.Run("undated records order by id", func(t *testing.T) {
		photos := []entity.Photo{{ID: "img-2"}, {ID: "img-10"}, {ID: "img-1"}}

		gallery.Sort(photos)

		assert.Equal(t, []string{"img-2", "img-10", "img-1"}, ids(photos))
	})

	t.Run("result does not depend on input order", func(t *testing.T) {
		a := []entity.Photo{
			{ID: "c", CreatedAt: ts(t, "2023-01-01")},
			{ID: "a"},
			{ID: "b", CreatedAt: ts(t, "2023-01-01")},
		}
		b := []entity.Photo{a[2], a[1], a[0]}

		gallery.Sort(a)
		gallery.Sort(b)

		assert.Equal(t, ids(a), ids(b))
	})
}
