package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository/filestore"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

func newStore(t *testing.T) (*filestore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "public", "photos-manifest.json")
	return filestore.NewStore(path, zap.NewNop()), path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is unavailable", func(t *testing.T) {
		store, _ := newStore(t)

		photos, err := store.Load(ctx)

		assert.Nil(t, photos)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("empty array is a valid manifest", func(t *testing.T) {
		store, path := newStore(t)
		writeFile(t, path, "[]")

		photos, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, photos)
	})

	t.Run("non array document is an error", func(t *testing.T) {
		store, path := newStore(t)
		writeFile(t, path, `{"id":"a"}`)

		_, err := store.Load(ctx)

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("drops malformed elements and keeps the rest", func(t *testing.T) {
		store, path := newStore(t)
		writeFile(t, path, `[
			{"id":"good","src":"/photos/good.jpg","alt":"Good","width":10,"height":5,"tags":["a"],"createdAt":"2023-06-01T00:00:00.000Z","exif":{"camera":"X","iso":200}},
			42,
			null,
			{"src":"/photos/no-id.jpg"},
			{"id":""},
			{"id":"bad-width","width":"wide"},
			{"id":"bad-tags","tags":"landscape"},
			{"id":"minimal"}
		]`)

		photos, err := store.Load(ctx)

		require.NoError(t, err)
		require.Len(t, photos, 2)

		good := photos[0]
		assert.Equal(t, "good", good.ID)
		assert.Equal(t, []string{"a"}, good.Tags)
		assert.Equal(t, "2023-06-01T00:00:00.000Z", entity.FormatTimestamp(*good.CreatedAt))
		require.NotNil(t, good.Exif)
		assert.Equal(t, "X", good.Exif.Camera)
		assert.Equal(t, 200, *good.Exif.ISO)

		minimal := photos[1]
		assert.Equal(t, "minimal", minimal.ID)
		assert.Equal(t, []string{}, minimal.Tags)
		assert.Nil(t, minimal.CreatedAt)
		assert.Nil(t, minimal.Exif)
	})

	t.Run("unparseable timestamp is treated as absent", func(t *testing.T) {
		store, path := newStore(t)
		writeFile(t, path, `[{"id":"a","createdAt":"yesterday"}]`)

		photos, err := store.Load(ctx)

		require.NoError(t, err)
		require.Len(t, photos, 1)
		assert.Nil(t, photos[0].CreatedAt)
	})
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("writes indented array", func(t *testing.T) {
		store, path := newStore(t)
		created, _ := entity.ParseTimestamp("2023-06-01T00:00:00.000Z")
		iso := 100

		err := store.Save(ctx, []entity.Photo{
			{ID: "a", Src: "/photos/a.jpg", Alt: "a", Width: 2, Height: 1, CreatedAt: &created, Exif: &entity.Exif{ISO: &iso}},
			{ID: "b", Src: "/photos/b.jpg", Alt: "b", Exif: &entity.Exif{}},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		expected := `[
  {
    "id": "a",
    "src": "/photos/a.jpg",
    "alt": "a",
    "width": 2,
    "height": 1,
    "tags": [],
    "createdAt": "2023-06-01T00:00:00.000Z",
    "exif": {
      "iso": 100
    }
  },
  {
    "id": "b",
    "src": "/photos/b.jpg",
    "alt": "b",
    "width": 0,
    "height": 0,
    "tags": [],
    "exif": {}
  }
]
`
		assert.Equal(t, expected, string(data))
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		store, path := newStore(t)

		require.NoError(t, store.Save(ctx, []entity.Photo{{ID: "a"}}))
		require.NoError(t, store.Save(ctx, []entity.Photo{{ID: "b"}}))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "photos-manifest.json", entries[0].Name())
	})

	t.Run("round trips", func(t *testing.T) {
		store, _ := newStore(t)
		focal := 35.0
		in := []entity.Photo{{
			ID: "a", Src: "/a.jpg", SrcFull: "/full/a.jpg", Alt: "A", Width: 3, Height: 2,
			Tags: []string{"x", "y"},
			Exif: &entity.Exif{Camera: "C", Lens: "L", FocalLengthMm: &focal, Aperture: "f/2", Shutter: "1/60s"},
		}}

		require.NoError(t, store.Save(ctx, in))
		out, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestStore_UpdateTags(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces tags of one record", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Save(ctx, []entity.Photo{
			{ID: "a", Tags: []string{"old"}},
			{ID: "b", Tags: []string{"keep"}},
		}))

		updated, err := store.UpdateTags(ctx, "a", []string{"new", "tags"})

		require.NoError(t, err)
		assert.Equal(t, []string{"new", "tags"}, updated.Tags)

		photos, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"new", "tags"}, photos[0].Tags)
		assert.Equal(t, []string{"keep"}, photos[1].Tags)
	})

	t.Run("unknown id", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Save(ctx, []entity.Photo{{ID: "a"}}))

		updated, err := store.UpdateTags(ctx, "zzz", []string{"x"})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})

	t.Run("missing manifest", func(t *testing.T) {
		store, _ := newStore(t)

		_, err := store.UpdateTags(ctx, "a", []string{"x"})

		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}
