package gallery_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

func newExtractor(t *testing.T, originalDir string) *gallery.Extractor {
	t.Helper()
	return gallery.NewExtractor(
		imagemeta.NewHeaderReader(),
		imagemeta.NewExifReader(zap.NewNop()),
		gallery.ExtractorConfig{
			OriginalDir:    originalDir,
			OriginalPrefix: "/photos",
			Timeout:        5 * time.Second,
			Concurrency:    4,
		},
		zap.NewNop(),
	)
}

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	v, ok := entity.ParseTimestamp(s)
	if !ok {
		t.Fatalf("bad timestamp %q", s)
	}
	return &v
}

func ids(photos []entity.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.ID
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
