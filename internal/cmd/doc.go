// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI command entry point for b64. It handles
// flag parsing, error handling, and output handling.
package cmd
