package gallery

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/media"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

const (
	DefaultExtractTimeout     = 10 * time.Second
	DefaultExtractConcurrency = 8
)

type ExtractorConfig struct {
	OriginalDir    string
	OriginalPrefix string
	Timeout        time.Duration
	Concurrency    int
}

// Extracted is what one image file yields on its own, before merging with
// the persisted record.
type Extracted struct {
	ID      string
	Src     string
	SrcFull string
	Width   int
	Height  int
	Meta    *entity.ImageMetadata
	ModTime *time.Time
}

type Extractor struct {
	dims   media.DimensionReader
	reader media.MetadataReader
	cfg    ExtractorConfig
	logger *zap.Logger
}

func NewExtractor(dims media.DimensionReader, reader media.MetadataReader, cfg ExtractorConfig, logger *zap.Logger) *Extractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultExtractTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultExtractConcurrency
	}
	return &Extractor{dims: dims, reader: reader, cfg: cfg, logger: logger}
}

// Scan extracts every image in dir. Only a failure to list dir is returned;
// per-file problems degrade that file's fields.
func (e *Extractor) Scan(ctx context.Context, dir, prefix string) ([]Extracted, error) {
	files, err := ListImages(dir)
	if err != nil {
		return nil, err
	}

	out := make([]Extracted, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for i, file := range files {
		g.Go(func() error {
			out[i] = e.extractWithTimeout(gctx, dir, prefix, file)
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

func (e *Extractor) extractWithTimeout(ctx context.Context, dir, prefix, file string) Extracted {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	done := make(chan Extracted, 1)
	go func() {
		done <- e.Extract(ctx, dir, prefix, file)
	}()

	select {
	case item := <-done:
		return item
	case <-ctx.Done():
		e.logger.Warn("extraction abandoned", zap.String("file", file), zap.Error(ctx.Err()))
		id := baseID(file)
		return Extracted{ID: id, Src: path.Join(prefix, file)}
	}
}

// Extract gathers dimensions, metadata and file time for one file.
func (e *Extractor) Extract(ctx context.Context, dir, prefix, file string) Extracted {
	id := baseID(file)
	served := filepath.Join(dir, file)
	item := Extracted{ID: id, Src: path.Join(prefix, file)}

	if w, h, err := e.dims.Dimensions(ctx, served); err != nil {
		e.logger.Debug("dimensions unavailable", zap.String("file", served), zap.Error(err))
	} else if w > 0 && h > 0 {
		item.Width, item.Height = w, h
	}

	var original string
	if name := findOriginal(e.cfg.OriginalDir, id); name != "" {
		original = filepath.Join(e.cfg.OriginalDir, name)
		if samePath(original, served) {
			original = ""
		} else if e.cfg.OriginalPrefix != "" {
			item.SrcFull = path.Join(e.cfg.OriginalPrefix, name)
		}
	}

	if original != "" {
		item.Meta = e.readMetadata(ctx, original)
	}
	if item.Meta.IsEmpty() {
		item.Meta = e.readMetadata(ctx, served)
	}

	timeSource := served
	if original != "" {
		timeSource = original
	}
	if st, err := os.Stat(timeSource); err == nil {
		mt := st.ModTime()
		item.ModTime = &mt
	}

	return item
}

func (e *Extractor) readMetadata(ctx context.Context, file string) *entity.ImageMetadata {
	meta, err := e.reader.ReadMetadata(ctx, file)
	if err != nil {
		e.logger.Debug("metadata unavailable", zap.String("file", file), zap.Error(err))
		return nil
	}
	return meta
}
