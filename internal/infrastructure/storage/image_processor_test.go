package storage_test

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/exiftest"
)

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestImageProcessor_Process(t *testing.T) {
	processor := storage.NewImageProcessor(100, 50, 78)

	t.Run("shrinks large images to fit", func(t *testing.T) {
		dir := t.TempDir()
		data := readFixture(t, exiftest.WriteJPEG(t, dir, "big.jpg", 400, 100, nil))

		out, err := processor.Process(bytes.NewReader(data))

		require.NoError(t, err)
		assert.False(t, out.Unchanged)
		assert.Equal(t, 100, out.Width)
		assert.Equal(t, 25, out.Height)

		encoded, err := io.ReadAll(out.Reader)
		require.NoError(t, err)
		assert.Equal(t, int64(len(encoded)), out.Size)
		_, format, err := image.DecodeConfig(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("passes small jpeg through untouched", func(t *testing.T) {
		dir := t.TempDir()
		data := readFixture(t, exiftest.WriteJPEG(t, dir, "small.jpg", 80, 40, &exiftest.Fields{Model: "X"}))

		out, err := processor.Process(bytes.NewReader(data))

		require.NoError(t, err)
		assert.True(t, out.Unchanged)
		assert.Equal(t, 80, out.Width)
		passed, err := io.ReadAll(out.Reader)
		require.NoError(t, err)
		assert.Equal(t, data, passed)
	})

	t.Run("re-encodes small png as jpeg without enlarging", func(t *testing.T) {
		dir := t.TempDir()
		data := readFixture(t, exiftest.WritePNG(t, dir, "small.png", 20, 10))

		out, err := processor.Process(bytes.NewReader(data))

		require.NoError(t, err)
		assert.False(t, out.Unchanged)
		assert.Equal(t, 20, out.Width)
		assert.Equal(t, 10, out.Height)
	})

	t.Run("rejects non images", func(t *testing.T) {
		out, err := processor.Process(strings.NewReader("plain text"))

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	})

	t.Run("defaults apply to zero bounds", func(t *testing.T) {
		p := storage.NewImageProcessor(0, 0, 0)
		dir := t.TempDir()
		data := readFixture(t, exiftest.WritePNG(t, filepath.Join(dir, "x"), "wide.png", 3840, 10))

		out, err := p.Process(bytes.NewReader(data))

		require.NoError(t, err)
		assert.Equal(t, storage.MaxImageWidth, out.Width)
	})
}
