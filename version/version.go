// Package version defines the PDF specification versions recognized by pdfexcavator.
package version

import "errors"

// ErrUnknownVersion indicates a string that does not name a recognized PDF version.
var ErrUnknownVersion = errors.New("version: unrecognized PDF version")

// Version represents a PDF specification version.
//
// Versions are ordered by publication, so they can be compared directly:
//
//	if v.AtLeast(version.V1_5) {
//	    // cross-reference streams may be present
//	}
type Version int

// The nine published PDF specification versions, in chronological order.
// The zero value is reserved and does not name a version.
const (
	_ Version = iota
	V1_0
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

// String returns the version as it appears in a PDF header (e.g., "1.7").
func (v Version) String() string {
	switch v {
	case V1_0:
		return "1.0"
	case V1_1:
		return "1.1"
	case V1_2:
		return "1.2"
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	case V1_5:
		return "1.5"
	case V1_6:
		return "1.6"
	case V1_7:
		return "1.7"
	case V2_0:
		return "2.0"
	default:
		return "unknown"
	}
}

// AtLeast reports whether v is min or a later revision.
func (v Version) AtLeast(min Version) bool {
	return v >= min
}

// Parse returns the Version named by s, one of "1.0" through "1.7" or "2.0".
// Any other string yields ErrUnknownVersion.
func Parse(s string) (Version, error) {
	switch s {
	case "1.0":
		return V1_0, nil
	case "1.1":
		return V1_1, nil
	case "1.2":
		return V1_2, nil
	case "1.3":
		return V1_3, nil
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "2.0":
		return V2_0, nil
	}
	return 0, ErrUnknownVersion
}
