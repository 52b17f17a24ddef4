package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/StewartChandler/pdfexcavator/version"
)

// Construction errors.
var (
	// ErrOpenFailure wraps any failure to open or read the underlying byte source.
	ErrOpenFailure = errors.New("pdf: unable to open file")
	// ErrBadVersionIdentifier reports that the first bytes of the source did not
	// match any recognized PDF header.
	ErrBadVersionIdentifier = errors.New("pdf: could not recognize version string, may not be a pdf file")
)

// headerLen is the size of the version-signature window: "%PDF-x.y" followed by
// CRLF, or by LF and the first byte of the document body.
const headerLen = 10

// Reader is a buffered PDF reader whose header has been validated.
//
// A Reader exists only if the first bytes of its source matched one of the
// accepted header signatures at construction time; the version it reports is
// always the one resolved from that match. After construction the read
// position is just past the 10-byte header window.
type Reader struct {
	br      *bufio.Reader
	file    *os.File // set when the Reader owns the file (see Open)
	version version.Version
}

// NewReader wraps src in a buffered reader and validates its PDF header.
//
// The header window is filled until 10 bytes arrive or the source is
// exhausted; a source shorter than the window is matched against its bytes
// with the remainder of the window left zeroed. On a failed match the
// buffered source is discarded along with any buffered bytes, so the caller
// must reopen the source to retry.
func NewReader(src io.ReadSeeker) (*Reader, error) {
	br := bufio.NewReader(src)

	var window [headerLen]byte
	if _, err := io.ReadFull(br, window[:]); err != nil &&
		err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailure, err)
	}

	v, ok := matchHeader(window)
	if !ok {
		return nil, ErrBadVersionIdentifier
	}

	return &Reader{br: br, version: v}, nil
}

// Open opens the file at path and validates its PDF header. The returned
// Reader owns the file; Close releases it. If the header does not match, the
// file is closed before the error is returned.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailure, err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f

	return r, nil
}

// matchHeader matches the window against the accepted header forms:
// "%PDF-x.y" followed by CRLF, or by LF with the tenth byte unchecked (it
// belongs to the document body). Matching is byte-exact; only the nine
// published version tokens are accepted.
func matchHeader(window [headerLen]byte) (version.Version, bool) {
	if string(window[:5]) != "%PDF-" {
		return 0, false
	}

	v, err := version.Parse(string(window[5:8]))
	if err != nil {
		return 0, false
	}

	switch {
	case window[8] == '\r' && window[9] == '\n':
		return v, true
	case window[8] == '\n':
		return v, true
	}
	return 0, false
}

// Version returns the version declared in the header.
func (r *Reader) Version() version.Version {
	return r.version
}

// Read continues reading the source from just past the header, satisfying
// io.Reader for whatever parses the document body.
func (r *Reader) Read(p []byte) (int, error) {
	return r.br.Read(p)
}

// Close closes the underlying file, if the Reader owns one. Readers built
// with NewReader own no file and Close is a no-op for them.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
