package fs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/justyntemme/scribe/internal/debug"
)

// ReadText reads the whole file at path as UTF-8 text. A maxSize of zero
// disables the size limit.
func ReadText(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", newReadError(path, err)
	}
	if info.IsDir() {
		return "", &ReadError{Kind: ReadIsDirectory, Path: path}
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", &ReadError{
			Kind: ReadTooLarge,
			Path: path,
			Err:  fmt.Errorf("%d bytes exceeds limit of %d", info.Size(), maxSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", newReadError(path, err)
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Kind: ReadInvalidEncoding, Path: path}
	}

	debug.Log(debug.FS, "ReadText: %q (%d bytes)", path, len(data))
	return string(data), nil
}
