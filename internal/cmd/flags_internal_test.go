// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"io"
	"testing"

	base64 "github.com/shahradelahi/go-base64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
		assert      func(t *testing.T, f *flags)
	}{
		{
			name: "defaults",
			assert: func(t *testing.T, f *flags) {
				t.Helper()
				assert.Equal(t, base64.AlphabetStd, f.alphabet)
				assert.Equal(t, base64.Options{}, f.options())
				assert.Empty(t, f.inputs)
			},
		},
		{
			name: "decode with files",
			args: []string{"-decode", "a.txt", "b.txt"},
			assert: func(t *testing.T, f *flags) {
				t.Helper()
				assert.True(t, f.decode)
				assert.Equal(t, []string{"a.txt", "b.txt"}, f.inputs)
			},
		},
		{
			name: "url alphabet without padding",
			args: []string{"-alphabet", "url", "-nopad"},
			assert: func(t *testing.T, f *flags) {
				t.Helper()
				assert.Equal(t, base64.Options{
					URLSafe:     true,
					OmitPadding: true,
				}, f.options())
			},
		},
		{
			name:        "unknown alphabet",
			args:        []string{"-alphabet", "base32"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown flag",
			args:        []string{"-bogus"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "wrap conflicts with decode",
			args:        []string{"-wrap", "text/plain", "-decode"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "wrap conflicts with unwrap",
			args:        []string{"-wrap", "text/plain", "-unwrap"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "validate conflicts with unwrap",
			args:        []string{"-validate", "-unwrap"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "help",
			args:        []string{"-h"},
			expectedErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlags(io.Discard)

			err := flags.parseArgs(tt.args)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.assert != nil {
				tt.assert(t, flags)
			}
		})
	}
}

func TestParseArgsAlphabetValue(t *testing.T) {
	flags := newFlags(io.Discard)

	require.NoError(t, flags.parseArgs([]string{"-alphabet=url"}))
	assert.Equal(t, base64.AlphabetURL, flags.alphabet)
}
