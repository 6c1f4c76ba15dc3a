// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBase64 is returned in validate mode if an input does not
	// match the base64 grammar.
	ErrNotBase64 = errors.New("input is not valid base64")

	// ErrReadBuildInfo is returned if the build info of the binary is
	// not available.
	ErrReadBuildInfo = errors.New("build info not available")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
