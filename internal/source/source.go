// Package source turns command-line file arguments and glob patterns into the
// line sources the hand extractor consumes.
package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/mavensledger/internal/handlog"
	"golang.org/x/sync/errgroup"
)

// maxReaders bounds how many files are open at once.
const maxReaders = 8

// Resolve returns the explicit files followed by every glob expansion, in the
// order given. Order matters: it breaks timestamp ties during replay.
func Resolve(files, globs []string) ([]string, error) {
	paths := append([]string(nil), files...)
	for _, pattern := range globs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// ReadAll reads every path concurrently and returns the sources in path order.
func ReadAll(ctx context.Context, paths []string) ([]handlog.Source, error) {
	sources := make([]handlog.Source, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxReaders)
	for i, path := range paths {
		g.Go(func() error {
			lines, err := readLines(ctx, path)
			if err != nil {
				return err
			}
			sources[i] = handlog.Source{Name: path, Lines: lines}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func readLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
