package imagemeta_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/exiftest"
)

func TestHeaderReader_Dimensions(t *testing.T) {
	dims := imagemeta.NewHeaderReader()
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("reads jpeg dimensions", func(t *testing.T) {
		path := exiftest.WriteJPEG(t, dir, "wide.jpg", 64, 32, nil)

		w, h, err := dims.Dimensions(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, 64, w)
		assert.Equal(t, 32, h)
	})

	t.Run("reads png dimensions", func(t *testing.T) {
		path := exiftest.WritePNG(t, dir, "tall.png", 30, 50)

		w, h, err := dims.Dimensions(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, 30, w)
		assert.Equal(t, 50, h)
	})

	t.Run("reads dimensions of jpeg carrying exif", func(t *testing.T) {
		path := exiftest.WriteJPEG(t, dir, "tagged.jpg", 40, 20, &exiftest.Fields{Model: "Model X"})

		w, h, err := dims.Dimensions(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, 40, w)
		assert.Equal(t, 20, h)
	})

	t.Run("rejects non-image file", func(t *testing.T) {
		path := filepath.Join(dir, "notes.jpg")
		require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

		_, _, err := dims.Dimensions(ctx, path)

		assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, _, err := dims.Dimensions(ctx, filepath.Join(dir, "missing.jpg"))
		assert.Error(t, err)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		path := exiftest.WritePNG(t, dir, "cancel.png", 2, 2)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := dims.Dimensions(cctx, path)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
