package optimize

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

// sourceExts are the original formats the optimizer reads.
var sourceExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

type Config struct {
	SourceDir string
	DestDir   string
	Force     bool
}

type Result struct {
	Written int
	Copied  int
	Skipped int
	Failed  int
}

type Service struct {
	processor storage.ImageProcessor
	logger    *zap.Logger
}

func NewService(processor storage.ImageProcessor, logger *zap.Logger) *Service {
	return &Service{processor: processor, logger: logger}
}

// Run writes a web-sized JPEG for every original in SourceDir. Files are
// handled one at a time; a failing file is counted and the run continues.
func (s *Service) Run(ctx context.Context, cfg Config) (*Result, error) {
	files, err := gallery.ListImages(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("listing originals: %w", err)
	}
	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{}
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !sourceExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		src := filepath.Join(cfg.SourceDir, name)
		dst := filepath.Join(cfg.DestDir, strings.TrimSuffix(name, filepath.Ext(name))+".jpg")

		if !cfg.Force && upToDate(src, dst) {
			result.Skipped++
			continue
		}

		copied, err := s.optimizeFile(src, dst)
		if err != nil {
			result.Failed++
			s.logger.Warn("optimizing image", zap.String("file", src), zap.Error(err))
			continue
		}
		if copied {
			result.Copied++
		} else {
			result.Written++
		}
	}

	s.logger.Info("optimization finished",
		zap.Int("written", result.Written),
		zap.Int("copied", result.Copied),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *Service) optimizeFile(src, dst string) (bool, error) {
	f, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	out, err := s.processor.Process(f)
	if err != nil {
		return false, err
	}

	if out.Unchanged {
		if err := copy.Copy(src, dst); err != nil {
			return false, fmt.Errorf("copying source: %w", err)
		}
		s.logger.Debug("copied", zap.String("file", dst))
		return true, nil
	}

	if err := writeFile(dst, out.Reader); err != nil {
		return false, err
	}
	s.logger.Debug("written",
		zap.String("file", dst),
		zap.Int("width", out.Width),
		zap.Int("height", out.Height),
		zap.Int64("size", out.Size),
	)
	return false, nil
}

// upToDate reports whether dst exists and is newer than src.
func upToDate(src, dst string) bool {
	ds, err := os.Stat(dst)
	if err != nil {
		return false
	}
	ss, err := os.Stat(src)
	if err != nil {
		return false
	}
	return ds.ModTime().After(ss.ModTime())
}

func writeFile(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
