package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// hashSelection splits scanned files into the ones worth hashing and the ones left out.
type hashSelection struct {
	candidates []m.FileRecord
	outOfBand  int
	// uniqueSize counts in-band files whose size no other in-band file has.
	uniqueSize int
}

// selectForHashing applies the size band and, when enabled, drops files of a unique size.
// Candidates are returned in lexical path order.
func selectForHashing(files map[m.Path]m.FileRecord, options m.HashOptions) hashSelection {
	var selection hashSelection

	inBand := make([]m.FileRecord, 0, len(files))
	sizes := make(map[uint64]int)

	for _, record := range files {
		if !options.InBand(record.Size) {
			selection.outOfBand++
			continue
		}

		inBand = append(inBand, record)
		sizes[record.Size]++
	}

	for _, record := range inBand {
		if options.SkipUniqueSizes && sizes[record.Size] < 2 {
			selection.uniqueSize++
			continue
		}

		selection.candidates = append(selection.candidates, record)
	}

	sort.Slice(selection.candidates, func(i, j int) bool {
		return selection.candidates[i].Path < selection.candidates[j].Path
	})

	return selection
}

// hashFiles hashes files with at most workers goroutines. The first failure cancels the
// remaining work; every failure is returned. Results are merged once all workers are done.
func hashFiles(ctx context.Context, hasher Hasher, files []m.FileRecord, workers int) (map[m.Path]string, error) {
	digests := make([]string, len(files))

	var (
		failures []error
		mu       sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for i, record := range files {
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}

			digest, err := hasher.HashFile(groupCtx, record.Path, record.Size)
			if err != nil {
				if errors.Is(err, context.Canceled) && ctx.Err() == nil {
					return nil
				}

				slog.Error("failed to hash file", "path", record.Path, "error", err)

				mu.Lock()

				failures = append(failures, err)

				mu.Unlock()

				return err
			}

			digests[i] = digest

			return nil
		})
	}

	_ = group.Wait()

	if len(failures) > 0 {
		return nil, fmt.Errorf("hash %d files: %w", len(files), errors.Join(failures...))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hashes := make(map[m.Path]string, len(files))
	for i, record := range files {
		hashes[record.Path] = digests[i]
	}

	return hashes, nil
}
