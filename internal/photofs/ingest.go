package photofs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kozaktomas/photo-print/internal/compose"
	"github.com/kozaktomas/photo-print/internal/constants"
	"github.com/kozaktomas/photo-print/internal/exif"
)

// Ingester turns image files into photos ready for composition.
type Ingester struct {
	parser      exif.Parser
	concurrency int
	now         func() time.Time
}

// IngesterOption customizes an Ingester.
type IngesterOption func(*Ingester)

// WithParser replaces the EXIF parser.
func WithParser(p exif.Parser) IngesterOption {
	return func(in *Ingester) {
		if p != nil {
			in.parser = p
		}
	}
}

// WithConcurrency sets the number of files read in parallel.
func WithConcurrency(n int) IngesterOption {
	return func(in *Ingester) {
		if n > 0 {
			in.concurrency = n
		}
	}
}

// WithClock sets the clock used for the missing-date default.
func WithClock(now func() time.Time) IngesterOption {
	return func(in *Ingester) {
		if now != nil {
			in.now = now
		}
	}
}

// NewIngester creates an Ingester with the goexif parser.
func NewIngester(opts ...IngesterOption) *Ingester {
	in := &Ingester{
		parser:      exif.NewParser(),
		concurrency: constants.WorkerPoolSize,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Failure is a file that could not be ingested.
type Failure struct {
	Path string
	Err  error
}

// Result holds the ingested photos in input order.
type Result struct {
	Photos   []compose.Photo
	Failures []Failure
}

// Ingest reads every path in parallel. Files that are not decodable images
// are reported in Failures; missing or unreadable EXIF is not a failure and
// falls back to the ingestion defaults. The returned error is only set when
// ctx is cancelled.
func (in *Ingester) Ingest(ctx context.Context, paths []string) (*Result, error) {
	photos := make([]*compose.Photo, len(paths))
	errs := make([]error, len(paths))

	jobs := make(chan int, len(paths))
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range min(in.concurrency, max(len(paths), 1)) {
		wg.Go(func() {
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				p, err := in.IngestFile(paths[i])
				if err != nil {
					log.Printf("WARNING: failed to ingest %s: %v", sanitizeForLog(paths[i]), err)
					errs[i] = err
					continue
				}
				photos[i] = p
			}
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ingest cancelled: %w", err)
	}

	res := &Result{}
	for i, p := range photos {
		if p != nil {
			res.Photos = append(res.Photos, *p)
			continue
		}
		res.Failures = append(res.Failures, Failure{Path: paths[i], Err: errs[i]})
	}
	return res, nil
}

// IngestFile reads one file. The image is only probed here; decoding is
// deferred to the asset.
func (in *Ingester) IngestFile(path string) (*compose.Photo, error) {
	if _, _, _, err := Dimensions(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return &compose.Photo{
		ID:       uuid.NewString(),
		Name:     filepath.Base(path),
		Asset:    FileAsset{Path: path},
		Metadata: in.readMetadata(path, f),
	}, nil
}

// IngestBytes builds a photo from an in-memory file such as an upload.
func (in *Ingester) IngestBytes(name string, data []byte) compose.Photo {
	return compose.Photo{
		ID:       uuid.NewString(),
		Name:     filepath.Base(name),
		Asset:    BytesAsset{Data: data},
		Metadata: in.readMetadata(name, bytes.NewReader(data)),
	}
}

func (in *Ingester) readMetadata(name string, r io.Reader) exif.Metadata {
	raw, err := in.parser.Parse(r)
	if err != nil && !errors.Is(err, exif.ErrNoMetadata) {
		log.Printf("WARNING: failed to read EXIF from %s: %v", sanitizeForLog(name), err)
	}
	return exif.WithDefaults(raw, in.now())
}

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
