// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"strings"
)

// EnvArgs returns b64 arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv("B64_ARGS"))
}

// MergedArgs prepends arguments from the environment to the given
// command line arguments, so the command line takes precedence.
func MergedArgs(args []string) []string {
	envArgs := EnvArgs()
	if len(envArgs) == 0 {
		return args
	}

	return append(envArgs, args...)
}
