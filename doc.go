// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

// Package base64 implements encoding and decoding of base64 text as
// defined in RFC 4648, for both the standard and the URL-safe alphabet.
// It provides one-shot string and byte codecs, strict grammar
// validation, base64 data URL packaging, and chunked codecs for data
// that arrives incrementally.
//
// Decoding is deliberately permissive: characters outside the alphabet,
// like line breaks added by transports, are discarded, and missing
// padding is restored before decoding. Callers that need strict input
// checking use [IsValid] or [IsValidURL] as a gate before decoding.
package base64
