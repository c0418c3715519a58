package imagemeta

import (
	"context"
	"fmt"

	"github.com/barasher/go-exiftool"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
	"github.com/marcos-nsantos/photo-portfolio/internal/domain/entity"
)

type exiftoolProcess interface {
	ExtractMetadata(files ...string) []exiftool.FileMetadata
	Close() error
}

// ExiftoolReader drives a long-lived exiftool process. Unlike ExifReader it
// also sees IPTC and XMP, which is where captions usually live.
type ExiftoolReader struct {
	// slot holds a token while a caller owns the process; exiftool speaks a
	// request/response protocol over one pipe.
	slot   chan struct{}
	proc   exiftoolProcess
	start  func() (exiftoolProcess, error)
	logger *zap.Logger
}

// NewExiftoolReader fails when the exiftool binary is not installed.
func NewExiftoolReader(logger *zap.Logger) (*ExiftoolReader, error) {
	start := func() (exiftoolProcess, error) {
		et, err := exiftool.NewExiftool(exiftool.NoPrintConversion())
		if err != nil {
			return nil, fmt.Errorf("starting exiftool: %w", err)
		}
		return et, nil
	}
	return newExiftoolReader(start, logger)
}

func newExiftoolReader(start func() (exiftoolProcess, error), logger *zap.Logger) (*ExiftoolReader, error) {
	proc, err := start()
	if err != nil {
		return nil, err
	}
	return &ExiftoolReader{
		slot:   make(chan struct{}, 1),
		proc:   proc,
		start:  start,
		logger: logger,
	}, nil
}

// ReadMetadata waits for the process only as long as ctx allows. A process
// that outlives ctx is abandoned and replaced on the next call.
func (r *ExiftoolReader) ReadMetadata(ctx context.Context, path string) (*entity.ImageMetadata, error) {
	select {
	case r.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	release := func() { <-r.slot }

	if r.proc == nil {
		proc, err := r.start()
		if err != nil {
			release()
			return nil, fmt.Errorf("restarting exiftool: %w", err)
		}
		r.proc = proc
	}
	proc := r.proc

	done := make(chan []exiftool.FileMetadata, 1)
	go func() { done <- proc.ExtractMetadata(path) }()

	var results []exiftool.FileMetadata
	select {
	case results = <-done:
		release()
	case <-ctx.Done():
		r.proc = nil
		release()
		r.logger.Warn("exiftool timed out, restarting", zap.String("path", path), zap.Error(ctx.Err()))
		go func() {
			<-done
			if err := proc.Close(); err != nil {
				r.logger.Debug("closing stalled exiftool", zap.Error(err))
			}
		}()
		return nil, ctx.Err()
	}

	if len(results) == 0 {
		return nil, domain.ErrNoMetadata
	}
	if results[0].Err != nil {
		return nil, fmt.Errorf("extracting metadata: %w", results[0].Err)
	}

	fields := make(map[string]string, len(results[0].Fields))
	for k, v := range results[0].Fields {
		fields[k] = fmt.Sprint(v)
	}

	meta := FromFields(fields)
	if meta.IsEmpty() {
		return nil, domain.ErrNoMetadata
	}
	return meta, nil
}

func (r *ExiftoolReader) Close() error {
	r.slot <- struct{}{}
	defer func() { <-r.slot }()

	if r.proc == nil {
		return nil
	}
	proc := r.proc
	r.proc = nil
	if err := proc.Close(); err != nil {
		r.logger.Warn("closing exiftool", zap.Error(err))
		return err
	}
	return nil
}
