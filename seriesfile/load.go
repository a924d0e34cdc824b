package seriesfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/echoflaresat/paintmix/paint"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// Load reads the series definition in the file at path.
func Load(path string) (*paint.Series, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	s, err := Parse(io.NewSectionReader(reader, 0, int64(reader.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadDir loads every series file in dir in parallel. Hidden files and
// subdirectories are ignored. Files that fail to load are logged and
// skipped; their errors are joined into the returned error alongside the
// series that did load, sorted by maker and name.
func LoadDir(ctx context.Context, dir string) ([]*paint.Series, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var (
		mu     sync.Mutex
		loaded []*paint.Series
		failed []error
	)
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := Load(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("skipping series file", "path", path, "error", err)
				failed = append(failed, err)
				return nil
			}
			loaded = append(loaded, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(loaded, func(a, b *paint.Series) int { return a.ID().Compare(b.ID()) })
	return loaded, errors.Join(failed...)
}
