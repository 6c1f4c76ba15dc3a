// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

import (
	"regexp"
)

var (
	validStdRE = regexp.MustCompile(
		`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`,
	)
	validURLRE = regexp.MustCompile(
		`^(?:[A-Za-z0-9_-]{4})*(?:[A-Za-z0-9_-]{2,3})?$`,
	)
)

// IsValid reports whether the given string matches the base64 grammar.
//
// For the standard alphabet the text must be padded to a multiple of
// four symbols. With [Options.URLSafe] set the text must use the
// URL-safe alphabet and must not be padded.
//
// Validation is a pure grammar check and stricter than decoding,
// which sanitizes its input instead of rejecting it. Callers that must
// not accept malformed text use IsValid as a gate before [Decode].
func IsValid(value string, opts ...Options) bool {
	if getOptions(opts).URLSafe {
		return validURLRE.MatchString(value)
	}

	return validStdRE.MatchString(value)
}

// IsValidURL is [IsValid] with the URL-safe alphabet selected.
func IsValidURL(value string) bool {
	return IsValid(value, Options{URLSafe: true})
}
