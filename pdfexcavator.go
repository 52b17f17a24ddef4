// Package pdfexcavator identifies the PDF specification version a file claims
// to conform to, by validating the version header at the start of the stream.
//
// Basic usage:
//
//	v, err := pdfexcavator.DetectVersion("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println("PDF version:", v)
//
// To keep reading the stream past the validated header, open a reader
// instead:
//
//	r, err := pdfexcavator.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//
// For construction from an arbitrary byte source, the lower-level reader
// package is also available.
package pdfexcavator

import (
	"github.com/StewartChandler/pdfexcavator/reader"
	"github.com/StewartChandler/pdfexcavator/version"
)

// Open opens the PDF file at path and validates its header. The returned
// Reader must be closed when done.
//
// Example:
//
//	r, err := pdfexcavator.Open("document.pdf")
func Open(path string) (*reader.Reader, error) {
	return reader.Open(path)
}

// DetectVersion reports the version declared in the header of the PDF file at
// path. The file is opened, validated, and closed again; use Open instead to
// keep reading the stream.
//
// Example:
//
//	v, err := pdfexcavator.DetectVersion("document.pdf")
func DetectVersion(path string) (version.Version, error) {
	r, err := reader.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return r.Version(), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	v := pdfexcavator.Must(pdfexcavator.DetectVersion("document.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
