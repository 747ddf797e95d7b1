package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every error produced by the shepherd packages wraps exactly one of them.
var (
	ErrPrecondition = errors.New("precondition failed")
	ErrIO           = errors.New("io failure")
	ErrInvariant    = errors.New("internal invariant violated")
)

// Causes.
var (
	ErrDirectoryNotEmpty    = errors.New("directory is not empty")
	ErrPathMissing          = errors.New("path does not exist")
	ErrPathNotConfigured    = errors.New("path is not configured")
	ErrEmptyArchive         = errors.New("archive contains no files")
	ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrPreflightFailed      = errors.New("system preflight failed")
	ErrEmptyCluster         = errors.New("duplicate cluster has no members")
	ErrFileInTwoClusters    = errors.New("file classified into more than one cluster")
	ErrSourceMissing        = errors.New("relocation source does not exist")
	ErrDestinationMissing   = errors.New("relocation destination folder does not exist")
	ErrDestinationExists    = errors.New("relocation destination already exists")
)

// Error carries the kind, the operation and the path involved in a failure.
type Error struct {
	Kind error
	Op   string
	Path Path
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}

	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}

	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// PreconditionError reports a state that must hold before work can start.
func PreconditionError(op string, path Path, err error) error {
	return &Error{Kind: ErrPrecondition, Op: op, Path: path, Err: err}
}

// IOError reports a failed filesystem operation.
func IOError(op string, path Path, err error) error {
	return &Error{Kind: ErrIO, Op: op, Path: path, Err: err}
}

// InvariantError reports a programming error. It is never expected in correct operation.
func InvariantError(op string, path Path, err error) error {
	return &Error{Kind: ErrInvariant, Op: op, Path: path, Err: err}
}

// KindOf returns the kind sentinel wrapped by err, or nil when err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrPrecondition, ErrInvariant, ErrIO} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
