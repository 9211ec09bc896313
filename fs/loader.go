// Package fs loads HTML documents from the local filesystem and stdin.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/scrapeo/scrapeo"
	"golang.org/x/net/html/charset"
)

// Stdin is the source name that reads the document from standard input.
const Stdin = "-"

var _ scrapeo.Loader = (*Loader)(nil)

// Loader reads documents from files, or from stdin for the source "-".
// Documents are decoded to UTF-8 using the encoding declared or sniffed
// from their first bytes.
type Loader struct {
	stdin io.Reader

	once      sync.Once
	stdinHTML string
	stdinErr  error
}

// NewLoader creates a Loader reading "-" from stdin.
func NewLoader(stdin io.Reader) *Loader {
	return &Loader{stdin: stdin}
}

// Load implements scrapeo.Loader. Stdin is read once; later loads of "-"
// return the same document.
// Returns ENOTFOUND if the file does not exist.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if source == Stdin {
		l.once.Do(func() {
			l.stdinHTML, l.stdinErr = decode(l.stdin)
		})
		return l.stdinHTML, l.stdinErr
	}

	data, err := os.ReadFile(source)
	if errors.Is(err, os.ErrNotExist) {
		return "", scrapeo.Errorf(scrapeo.ENOTFOUND, "file %q not found", source)
	} else if err != nil {
		return "", err
	}
	return decode(bytes.NewReader(data))
}

func decode(r io.Reader) (string, error) {
	if r == nil {
		return "", scrapeo.Errorf(scrapeo.EINVALID, "no stdin available")
	}
	utf8, err := charset.NewReader(r, "")
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(utf8)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
