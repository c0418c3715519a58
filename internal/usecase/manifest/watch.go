package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch generates the manifest once, then regenerates it whenever a photo
// directory changes, until ctx is cancelled. Bursts of events closer than the debounce interval cause
// a single run. A failed run is logged and watching continues.
func (s *Service) Watch(ctx context.Context, publish bool) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	dirs := s.watchDirs()
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			s.logger.Debug("not watching", zap.String("dir", d), zap.Error(err))
			continue
		}
		s.logger.Info("watching", zap.String("dir", d))
	}

	if err := s.Run(ctx, publish); err != nil {
		s.logger.Error("generating manifest", zap.Error(err))
	}

	timer := time.NewTimer(s.cfg.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !s.relevant(event) {
				continue
			}
			s.logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) && s.isPhotoDir(event.Name) {
				if err := w.Add(event.Name); err == nil {
					s.logger.Info("watching", zap.String("dir", event.Name))
				}
			}
			timer.Reset(s.cfg.Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			if err := s.Run(ctx, publish); err != nil {
				s.logger.Error("regenerating manifest", zap.Error(err))
			}
		}
	}
}

// watchDirs lists the photo directories plus their parents, so a photo
// directory created after start is noticed.
func (s *Service) watchDirs() []string {
	var dirs []string
	for _, d := range s.cfg.Dirs {
		if d.Path == "" {
			continue
		}
		dirs = append(dirs, filepath.Clean(d.Path), filepath.Dir(filepath.Clean(d.Path)))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

func (s *Service) isPhotoDir(name string) bool {
	name = filepath.Clean(name)
	for _, d := range s.cfg.Dirs {
		if d.Path != "" && filepath.Clean(d.Path) == name {
			return true
		}
	}
	return false
}

func (s *Service) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	if s.cfg.ManifestPath != "" && filepath.Clean(event.Name) == filepath.Clean(s.cfg.ManifestPath) {
		return false
	}
	if s.isPhotoDir(event.Name) {
		return true
	}
	dir := filepath.Dir(filepath.Clean(event.Name))
	return s.isPhotoDir(dir)
}
