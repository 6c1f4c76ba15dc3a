// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64_test

import (
	stdbase64 "encoding/base64"
	"strings"
	"testing"

	base64 "github.com/shahradelahi/go-base64"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []base64.Options
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "one byte",
			input:    "f",
			expected: "Zg==",
		},
		{
			name:     "two bytes",
			input:    "fo",
			expected: "Zm8=",
		},
		{
			name:     "three bytes",
			input:    "foo",
			expected: "Zm9v",
		},
		{
			name:     "four bytes",
			input:    "foob",
			expected: "Zm9vYg==",
		},
		{
			name:     "five bytes",
			input:    "fooba",
			expected: "Zm9vYmE=",
		},
		{
			name:     "six bytes",
			input:    "foobar",
			expected: "Zm9vYmFy",
		},
		{
			name:     "hello world",
			input:    "Hello, world!",
			expected: "SGVsbG8sIHdvcmxkIQ==",
		},
		{
			name:     "omit padding",
			input:    "Hello, world!",
			opts:     []base64.Options{{OmitPadding: true}},
			expected: "SGVsbG8sIHdvcmxkIQ",
		},
		{
			name:     "url safe unpadded",
			input:    "a+b/c=",
			opts:     []base64.Options{{URLSafe: true, OmitPadding: true}},
			expected: "YStiL2M9",
		},
		{
			name:     "multi byte utf8",
			input:    "héllo ✓",
			expected: "aMOpbGxvIOKckw==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.Encode(tt.input, tt.opts...))
		})
	}
}

func TestEncodeBytesSubstitution(t *testing.T) {
	// All four symbols are 0b111110 or 0b111111, the two symbols the
	// alphabets differ in.
	plus := []byte{0xfb, 0xef, 0xbe}
	slash := []byte{0xff, 0xff, 0xff}

	assert.Equal(t, "++++", base64.EncodeBytes(plus))
	assert.Equal(t, "----", base64.EncodeBytes(plus, base64.Options{URLSafe: true}))
	assert.Equal(t, "////", base64.EncodeBytes(slash))
	assert.Equal(t, "____", base64.EncodeBytes(slash, base64.Options{URLSafe: true}))
}

func TestEncodeURL(t *testing.T) {
	assert.Equal(t,
		"YStiL2M9",
		base64.EncodeURL("a+b/c=", base64.Options{OmitPadding: true}),
	)

	// URLSafe cannot be disabled through the options.
	assert.Equal(t,
		"----",
		base64.EncodeURL("\xfb\xef\xbe", base64.Options{URLSafe: false, OmitPadding: true}),
	)
}

func TestEncodeBytesPadding(t *testing.T) {
	for n := 0; n <= 33; n++ {
		data := testBytes(n)
		encoded := base64.EncodeBytes(data)

		assert.Len(t, encoded, (n+2)/3*4, "input length %d", n)

		expectedPad := map[int]int{0: 0, 1: 2, 2: 1}[n%3]
		actualPad := len(encoded) - len(strings.TrimRight(encoded, "="))
		assert.Equal(t, expectedPad, actualPad, "input length %d", n)
	}
}

func TestEncodeBytesMatchesStdlib(t *testing.T) {
	for n := 0; n <= 64; n++ {
		data := testBytes(n)

		assert.Equal(t,
			stdbase64.StdEncoding.EncodeToString(data),
			base64.EncodeBytes(data),
			"input length %d", n)

		assert.Equal(t,
			stdbase64.RawURLEncoding.EncodeToString(data),
			base64.EncodeBytes(data, base64.Options{
				URLSafe:     true,
				OmitPadding: true,
			}),
			"input length %d", n)
	}
}

// testBytes returns n bytes covering the whole value range unevenly.
func testBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*37 + n*3)
	}

	return data
}
