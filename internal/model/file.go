// Package model defines the data structures shared by the shepherd packages.
package model

import (
	"fmt"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// HashAlgorithm names the digest used to fingerprint file content.
type HashAlgorithm string

const (
	// HashMD5 selects crypto/md5.
	HashMD5 HashAlgorithm = "MD5"
	// HashSHA1 selects crypto/sha1.
	HashSHA1 HashAlgorithm = "SHA1"
)

// ParseHashAlgorithm accepts MD5 or SHA1 in any letter case.
func ParseHashAlgorithm(value string) (HashAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(HashMD5):
		return HashMD5, nil
	case string(HashSHA1), "SHA-1":
		return HashSHA1, nil
	}

	return "", PreconditionError("parse hash algorithm", "",
		fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, value))
}

// FileRecord is one regular file discovered under a collection path.
type FileRecord struct {
	Path      Path   `yaml:"path"`
	Size      uint64 `yaml:"size"`
	Hash      string `yaml:"hash,omitempty"`
	IsSymlink bool   `yaml:"is_symlink,omitempty"`
}

// Hashed reports whether the record has been through the hasher.
func (f FileRecord) Hashed() bool {
	return f.Hash != ""
}
