package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/bootstrap"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/config"
)

func TestOpenStores(t *testing.T) {
	t.Run("file mode uses the manifest for everything", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &config.Config{Photos: config.PhotosConfig{PublicDir: dir, Store: config.StoreFile}}

		stores, err := bootstrap.OpenStores(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		defer stores.Close()

		assert.Equal(t, filepath.Join(dir, "photos-manifest.json"), stores.File.Path())
		assert.Same(t, stores.File, stores.Primary)
		assert.Nil(t, stores.Mirror)
	})
}

func TestNewRemoteLibrary(t *testing.T) {
	t.Run("returns nil interface without credentials", func(t *testing.T) {
		lib, err := bootstrap.NewRemoteLibrary(config.CloudinaryConfig{}, zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, lib)
		assert.True(t, lib == nil)
	})
}

func TestDefaultSources(t *testing.T) {
	t.Run("derives directories from the public dir", func(t *testing.T) {
		src := bootstrap.DefaultSources(config.PhotosConfig{
			PublicDir:       "public",
			OriginalPrefix:  "/photos",
			OptimizedPrefix: "/photos-optimized",
		}, nil)

		assert.Equal(t, filepath.Join("public", "photos"), src.OriginalDir)
		assert.Equal(t, filepath.Join("public", "photos-optimized"), src.OptimizedDir)
		assert.Nil(t, src.Library)
	})
}
