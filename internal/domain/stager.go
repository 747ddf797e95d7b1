package domain

import (
	"context"
	"log/slog"
	"sort"

	m "shepherd.dev/pkg/shepherd/internal/model"
)

// SourceStager takes over once the archive is known to be clean.
// The default implementation classifies source files against the archive and moves nothing.
type SourceStager interface {
	Stage(ctx context.Context, c m.Collection, archive *m.CollectionMetadata) (m.StageReport, error)
}

type sourceStager struct {
	Scanner
	Hasher
	options      m.HashOptions
	skipSymlinks bool
}

// NewSourceStager returns a SourceStager using the same scan and hash rules as the archive.
func NewSourceStager(scanner Scanner, hasher Hasher, config m.Config) SourceStager {
	return &sourceStager{
		Scanner:      scanner,
		Hasher:       hasher,
		options:      config.Hash,
		skipSymlinks: config.SkipSoftLinks,
	}
}

// Stage marks every source file as unique or as already archived. Only files whose size
// matches an archive file are hashed; archive files hashed on the way are recorded in archive.
func (s *sourceStager) Stage(ctx context.Context, c m.Collection, archive *m.CollectionMetadata) (m.StageReport, error) {
	report := m.StageReport{Archived: make(map[m.Path]m.Path)}

	scan, err := s.Scan(ctx, c.Source, s.skipSymlinks)
	if err != nil {
		return report, err
	}

	archiveSizes := make(map[uint64][]*m.FileRecord)
	for _, record := range archive.Files {
		if s.options.InBand(record.Size) {
			archiveSizes[record.Size] = append(archiveSizes[record.Size], record)
		}
	}

	var candidates, pending []m.FileRecord

	queued := make(map[m.Path]bool)

	for _, record := range scan.Files {
		peers, ok := archiveSizes[record.Size]
		if !ok || !s.options.InBand(record.Size) {
			report.Unique = append(report.Unique, record.Path)
			report.UniqueBytes += record.Size

			continue
		}

		candidates = append(candidates, record)

		for _, peer := range peers {
			if !peer.Hashed() && !queued[peer.Path] {
				queued[peer.Path] = true
				pending = append(pending, *peer)
			}
		}
	}

	if len(pending) > 0 {
		hashes, err := hashFiles(ctx, s.Hasher, pending, s.options.WorkerCount())
		if err != nil {
			return report, err
		}

		for path, digest := range hashes {
			if err := archive.SetHash(path, digest); err != nil {
				return report, err
			}
		}
	}

	hashes, err := hashFiles(ctx, s.Hasher, candidates, s.options.WorkerCount())
	if err != nil {
		return report, err
	}

	known := archive.HashSet()

	for _, record := range candidates {
		if match, ok := known[hashes[record.Path]]; ok {
			report.Archived[record.Path] = match
			continue
		}

		report.Unique = append(report.Unique, record.Path)
		report.UniqueBytes += record.Size
	}

	sort.Slice(report.Unique, func(i, j int) bool { return report.Unique[i] < report.Unique[j] })

	slog.Info("classified source files", "collection", c.Name,
		"unique", len(report.Unique), "archived", len(report.Archived))

	return report, nil
}
