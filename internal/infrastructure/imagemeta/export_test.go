package imagemeta

import (
	"sync/atomic"

	"github.com/barasher/go-exiftool"
	"go.uber.org/zap"
)

// FakeExiftool stands in for the exiftool process.
type FakeExiftool struct {
	Extract func(path string) []exiftool.FileMetadata
	closed  atomic.Bool
}

func (p *FakeExiftool) ExtractMetadata(files ...string) []exiftool.FileMetadata {
	return p.Extract(files[0])
}

func (p *FakeExiftool) Close() error {
	p.closed.Store(true)
	return nil
}

func (p *FakeExiftool) Closed() bool {
	return p.closed.Load()
}

// NewExiftoolReaderWith builds a reader whose processes come from start.
func NewExiftoolReaderWith(start func() *FakeExiftool, logger *zap.Logger) *ExiftoolReader {
	r, _ := newExiftoolReader(func() (exiftoolProcess, error) { return start(), nil }, logger)
	return r
}
