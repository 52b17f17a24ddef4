// Package reader provides PDF file opening with header validation.
//
// A PDF file declares its specification version in a fixed-form header on its
// first line, per ISO 32000:
//
//	%PDF-1.7
//
// This package reads exactly that: constructing a [Reader] performs one
// bounded read of the first 10 bytes of the source and matches them against
// the accepted header signatures. Both line-ending conventions are accepted —
// CRLF, where the header fills the window exactly, and bare LF, where the
// tenth byte already belongs to the document body and is ignored. Nine
// versions are recognized, 1.0 through 1.7 and 2.0; anything else fails with
// [ErrBadVersionIdentifier].
//
// # Opening PDF Files
//
// Use [Open] to validate a file on disk:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	fmt.Println("PDF version:", r.Version())
//
// Or use [NewReader] with any io.ReadSeeker positioned at the start of a PDF
// stream. On success the Reader owns the buffered source, positioned just
// past the header, and its Read method continues from there.
//
// # Errors
//
// Failures come in two kinds, both checkable with errors.Is: [ErrOpenFailure]
// wraps I/O faults from acquiring or reading the source, and
// [ErrBadVersionIdentifier] means the bytes were readable but are not a
// recognized PDF header. Construction never panics, whatever the input:
// empty, truncated, and arbitrary binary sources all fail through the typed
// error path.
package reader
