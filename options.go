// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

// Options control how base64 text is produced and interpreted.
//
// The zero value selects the standard alphabet with padding, which is
// the default for all functions taking optional [Options].
type Options struct {
	// URLSafe selects the URL-safe alphabet ('-' and '_' instead of
	// '+' and '/'). On decode it selects which substitution is applied
	// to the input before decoding.
	URLSafe bool
	// OmitPadding strips the trailing padding characters from encoded
	// output. It has no effect on decoding, which restores missing
	// padding in any case.
	OmitPadding bool
}

func getOptions(opts []Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}

	return Options{}
}
