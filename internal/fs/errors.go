package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// ScanFailure classifies why a directory scan was aborted.
type ScanFailure int

const (
	ScanIO ScanFailure = iota
	ScanNotFound
	ScanPermissionDenied
)

func (k ScanFailure) String() string {
	switch k {
	case ScanNotFound:
		return "not found"
	case ScanPermissionDenied:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// ScanError aborts a whole scan. Path is the directory that failed, which
// may be nested below the scan root.
type ScanError struct {
	Kind ScanFailure
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

func newScanError(path string, err error) *ScanError {
	kind := ScanIO
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		kind = ScanNotFound
	case errors.Is(err, iofs.ErrPermission):
		kind = ScanPermissionDenied
	}
	return &ScanError{Kind: kind, Path: path, Err: err}
}

// ReadFailure classifies why a file could not be opened as a document.
type ReadFailure int

const (
	ReadIO ReadFailure = iota
	ReadNotFound
	ReadPermissionDenied
	ReadInvalidEncoding
	ReadIsDirectory
	ReadTooLarge
)

func (k ReadFailure) String() string {
	switch k {
	case ReadNotFound:
		return "not found"
	case ReadPermissionDenied:
		return "permission denied"
	case ReadInvalidEncoding:
		return "not valid UTF-8 text"
	case ReadIsDirectory:
		return "is a directory"
	case ReadTooLarge:
		return "file too large"
	default:
		return "i/o error"
	}
}

// ReadError reports a failed document read.
type ReadError struct {
	Kind ReadFailure
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("read %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("read %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func newReadError(path string, err error) *ReadError {
	kind := ReadIO
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		kind = ReadNotFound
	case errors.Is(err, iofs.ErrPermission):
		kind = ReadPermissionDenied
	}
	return &ReadError{Kind: kind, Path: path, Err: err}
}
