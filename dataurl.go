// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

import (
	"regexp"
	"strings"
)

const (
	dataURLScheme = "data:"
	dataURLMarker = ";base64,"
)

// mimeTypeRE limits MIME types to the syntactic shape used by data
// URLs. The content is not validated any further.
var mimeTypeRE = regexp.MustCompile(`^[\w/\-+.]{1,100}$`)

// DataURL is the result of unpacking a base64 data URL.
type DataURL struct {
	Data     string
	MIMEType string
}

// ToDataURL packages the given string into a base64 data URL with the
// given MIME type, like "data:text/plain;base64,SGk=".
func ToDataURL(value, mimeType string, opts ...Options) string {
	return dataURLScheme + mimeType + dataURLMarker + Encode(value, opts...)
}

// FromDataURL unpacks a base64 data URL into its MIME type and decoded
// payload. The payload is decoded with the standard alphabet.
//
// It returns a [DataURLError] if the string is not a data URL, has no
// base64 marker, or its MIME type is malformed.
func FromDataURL(url string) (DataURL, error) {
	rest, found := strings.CutPrefix(url, dataURLScheme)
	if !found {
		return DataURL{}, &DataURLError{Err: ErrDataURLScheme}
	}

	mimeType, payload, found := strings.Cut(rest, dataURLMarker)
	if !found {
		return DataURL{}, &DataURLError{Err: ErrDataURLMarker}
	}

	if !mimeTypeRE.MatchString(mimeType) {
		return DataURL{}, &DataURLError{Err: ErrDataURLMIMEType}
	}

	dataURL := DataURL{
		Data:     Decode(payload),
		MIMEType: mimeType,
	}

	return dataURL, nil
}
