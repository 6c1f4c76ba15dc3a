// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

import (
	"errors"
)

var (
	// ErrClosed is returned if a chunked [Encoder] or [Decoder] is
	// pushed to or finished after Finish has been called.
	ErrClosed = errors.New("stream already closed")

	// ErrAlphabetInvalid is returned if an [Alphabet] is neither
	// [AlphabetStd] nor [AlphabetURL].
	ErrAlphabetInvalid = errors.New("unknown alphabet")

	// ErrDataURLScheme is returned if a data URL does not start with
	// the "data:" scheme.
	ErrDataURLScheme = errors.New("missing data: scheme")

	// ErrDataURLMarker is returned if a data URL does not contain the
	// ";base64," marker.
	ErrDataURLMarker = errors.New("missing ;base64, marker")

	// ErrDataURLMIMEType is returned if the MIME type of a data URL is
	// empty, too long or contains characters outside the allowed set.
	ErrDataURLMIMEType = errors.New("malformed mime type")
)

// DataURLError indicates that a string could not be parsed as a base64
// data URL.
type DataURLError struct {
	Err error
}

// Error implements the [error] interface.
func (e *DataURLError) Error() string {
	return "invalid data url: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*DataURLError) Is(other error) bool {
	_, ok := other.(*DataURLError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *DataURLError) Unwrap() error {
	return e.Err
}
