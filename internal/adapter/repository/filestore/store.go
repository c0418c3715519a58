package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

// Store keeps the record set in the manifest JSON file that is also served
// as a static asset.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) ([]entity.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) ([]entity.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading manifest: %w", domain.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	photos, dropped, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		s.logger.Warn("dropped malformed manifest entries",
			zap.String("path", s.path),
			zap.Int("dropped", dropped),
		)
	}
	return photos, nil
}

func (s *Store) Save(ctx context.Context, photos []entity.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, photos)
}

func (s *Store) save(ctx context.Context, photos []entity.Photo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(photos)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func (s *Store) UpdateTags(ctx context.Context, id string, tags []string) (*entity.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}

	idx := slices.IndexFunc(photos, func(p entity.Photo) bool { return p.ID == id })
	if idx < 0 {
		return nil, domain.ErrPhotoNotFound
	}
	photos[idx].Tags = slices.Clone(tags)
	if photos[idx].Tags == nil {
		photos[idx].Tags = []string{}
	}

	if err := s.save(ctx, photos); err != nil {
		return nil, err
	}
	updated := photos[idx]
	return &updated, nil
}

// writeAtomic writes data next to path and renames it into place, so readers
// never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
