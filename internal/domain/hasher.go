// Package domain contains the duplicate detection and reconciliation pipeline.
package domain

import (
	"context"
	"crypto/md5"  //nolint:gosec // content fingerprint, not a security boundary
	"crypto/sha1" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"

	"shepherd.dev/pkg/shepherd/internal/adapter"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// ProgressFunc receives the bytes read so far for a large file.
type ProgressFunc func(path m.Path, read, size uint64)

// Hasher computes content digests.
type Hasher interface {
	HashFile(ctx context.Context, path m.Path, size uint64) (string, error)
}

type hasher struct {
	adapter.FileManager
	newHash    func() hash.Hash
	bufferSize int
	threshold  uint64
	progress   ProgressFunc
}

// NewHasher returns a Hasher for the configured algorithm and buffer size.
// progress may be nil.
func NewHasher(fileManager adapter.FileManager, options m.HashOptions, progress ProgressFunc) (Hasher, error) {
	algorithm, err := m.ParseHashAlgorithm(string(options.Algorithm))
	if err != nil {
		return nil, err
	}

	if options.BufferSize <= 0 {
		return nil, m.PreconditionError("new hasher", "",
			fmt.Errorf("%w: buffer size must be positive, got %d", m.ErrInvalidConfig, options.BufferSize))
	}

	h := &hasher{
		FileManager: fileManager,
		bufferSize:  options.BufferSize,
		threshold:   options.LargeFileThreshold,
		progress:    progress,
	}

	switch algorithm {
	case m.HashSHA1:
		h.newHash = sha1.New
	default:
		h.newHash = md5.New
	}

	return h, nil
}

// HashFile reads path in chunks of the configured buffer size. size is only used for progress.
func (h *hasher) HashFile(ctx context.Context, path m.Path, size uint64) (string, error) {
	file, err := h.Open(path)
	if err != nil {
		return "", m.IOError("open", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	digest := h.newHash()
	buffer := make([]byte, h.bufferSize)
	report := h.progress != nil && h.threshold > 0 && size > h.threshold

	var read uint64

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n, err := io.ReadFull(file, buffer)
		if n > 0 {
			digest.Write(buffer[:n])
			read += uint64(n)

			if report {
				h.progress(path, read, size)
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}

		if err != nil {
			return "", m.IOError("read", path, err)
		}
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
