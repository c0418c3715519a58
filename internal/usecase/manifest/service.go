package manifest

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/storage"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
)

const DefaultDebounce = 500 * time.Millisecond

// Dir is a served photo directory and the URL prefix it is published under.
type Dir struct {
	Path   string
	Prefix string
}

type Config struct {
	PublicDir    string
	ManifestPath string
	Dirs         []Dir
	Debounce     time.Duration
}

type Service struct {
	resolver  gallery.PhotoResolver
	store     repository.PhotoRepository
	mirror    repository.PhotoRepository
	publisher storage.ObjectStorage
	cfg       Config
	logger    *zap.Logger
}

// NewService wires the generator. mirror receives a copy of every saved
// record set and may be nil; so may publisher.
func NewService(
	resolver gallery.PhotoResolver,
	store repository.PhotoRepository,
	mirror repository.PhotoRepository,
	publisher storage.ObjectStorage,
	cfg Config,
	logger *zap.Logger,
) *Service {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Service{
		resolver:  resolver,
		store:     store,
		mirror:    mirror,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Generate rebuilds the record set from the photo directories and persists
// it. An empty result is still saved.
func (s *Service) Generate(ctx context.Context) ([]entity.Photo, error) {
	start := time.Now()
	photos := s.resolver.Resolve(ctx)
	if photos == nil {
		photos = []entity.Photo{}
	}

	if err := s.store.Save(ctx, photos); err != nil {
		return nil, fmt.Errorf("saving manifest: %w", err)
	}
	if s.mirror != nil {
		if err := s.mirror.Save(ctx, photos); err != nil {
			return nil, fmt.Errorf("saving manifest copy: %w", err)
		}
	}

	s.logger.Info("manifest generated",
		zap.Int("photos", len(photos)),
		zap.Duration("took", time.Since(start)),
	)
	return photos, nil
}

type PublishResult struct {
	Uploaded    int
	Skipped     int
	ManifestURL string
}

// Publish uploads the manifest file and every local image it references to
// object storage, keyed by public path.
func (s *Service) Publish(ctx context.Context, photos []entity.Photo) (*PublishResult, error) {
	if s.publisher == nil {
		return nil, domain.ErrPublishNotConfigured
	}

	result := &PublishResult{}
	seen := make(map[string]struct{})
	upload := func(file, key string) error {
		if _, ok := seen[key]; ok {
			return nil
		}
		seen[key] = struct{}{}
		if err := s.uploadFile(ctx, file, key); err != nil {
			return err
		}
		result.Uploaded++
		return nil
	}

	for _, p := range photos {
		for _, src := range []string{p.Src, p.SrcFull} {
			if src == "" {
				continue
			}
			file, ok := s.localFile(src)
			if !ok {
				result.Skipped++
				continue
			}
			if err := upload(file, strings.TrimPrefix(src, "/")); err != nil {
				return result, err
			}
		}
	}

	key := s.manifestKey()
	if err := upload(s.cfg.ManifestPath, key); err != nil {
		return result, err
	}
	result.ManifestURL = s.publisher.GetURL(key)

	s.logger.Info("manifest published",
		zap.String("url", result.ManifestURL),
		zap.Int("uploaded", result.Uploaded),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// localFile maps a public path back to the file it was generated from.
// Remote URLs and paths outside every configured prefix are not local.
func (s *Service) localFile(src string) (string, bool) {
	for _, d := range s.cfg.Dirs {
		prefix := strings.TrimSuffix(d.Prefix, "/") + "/"
		if d.Path == "" || !strings.HasPrefix(src, prefix) {
			continue
		}
		name := path.Clean(strings.TrimPrefix(src, prefix))
		if name == "." || strings.HasPrefix(name, "..") {
			return "", false
		}
		return filepath.Join(d.Path, filepath.FromSlash(name)), true
	}
	return "", false
}

func (s *Service) manifestKey() string {
	if s.cfg.PublicDir != "" {
		if rel, err := filepath.Rel(s.cfg.PublicDir, s.cfg.ManifestPath); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.Base(s.cfg.ManifestPath)
}

func (s *Service) uploadFile(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening %s: %w", file, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", file, err)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(file)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.publisher.Upload(ctx, key, f, contentType, st.Size()); err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	s.logger.Debug("uploaded", zap.String("key", key), zap.Int64("size", st.Size()))
	return nil
}

// Run generates and, when publish is set, publishes.
func (s *Service) Run(ctx context.Context, publish bool) error {
	photos, err := s.Generate(ctx)
	if err != nil {
		return err
	}
	if !publish {
		return nil
	}
	if _, err := s.Publish(ctx, photos); err != nil {
		if errors.Is(err, domain.ErrPublishNotConfigured) {
			s.logger.Warn("publishing skipped: no bucket configured")
			return nil
		}
		return fmt.Errorf("publishing manifest: %w", err)
	}
	return nil
}
