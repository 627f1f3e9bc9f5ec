package site

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// buildWorkers bounds the pages rendered at once.
const buildWorkers = 4

// ErrBuild is returned when the static export fails.
var ErrBuild = errors.New("site build failed")

// Build writes every page, enhanced, to outDir/<name>.html and copies the
// static assets to outDir/static. It returns the pages written.
func Build(ctx context.Context, store PageStore, static fs.FS, outDir string) ([]string, error) {
	names, err := store.Names()
	if err != nil {
		return nil, errors.Join(ErrBuild, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Join(ErrBuild, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make([]bool, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(buildWorkers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writePage(gctx, store, name, filepath.Join(outDir, name+".html")); err != nil {
				return err
			}
			done[i] = true
			return nil
		})
	}
	werr := g.Wait()

	written := make([]string, 0, len(names))
	for i, name := range names {
		if done[i] {
			written = append(written, name)
		}
	}
	if werr != nil {
		return written, errors.Join(ErrBuild, werr)
	}

	if static != nil {
		if err := os.CopyFS(filepath.Join(outDir, "static"), static); err != nil {
			return written, errors.Join(ErrBuild, fmt.Errorf("copy static: %w", err))
		}
	}

	return written, nil
}

func writePage(ctx context.Context, store PageStore, name, path string) error {
	doc, err := store.Document(ctx, name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := doc.Render(bw); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
