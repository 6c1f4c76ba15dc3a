// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

// Encode returns the base64 representation of the UTF-8 bytes of the
// given string.
func Encode(value string, opts ...Options) string {
	return EncodeBytes([]byte(value), opts...)
}

// EncodeURL is [Encode] with the URL-safe alphabet selected.
func EncodeURL(value string, opts ...Options) string {
	o := getOptions(opts)
	o.URLSafe = true

	return EncodeBytes([]byte(value), o)
}

// EncodeBytes returns the base64 representation of the given bytes.
//
// Input is processed in groups of three bytes producing four symbols
// each. A trailing group of one or two bytes is zero extended for bit
// packing and the unproduced symbols are emitted as padding, unless
// [Options.OmitPadding] is set.
func EncodeBytes(data []byte, opts ...Options) string {
	o := getOptions(opts)

	encoded := appendEncoded(make([]byte, 0, encodedLen(len(data))), data)

	if o.URLSafe {
		substitute(encoded, '+', '-')
		substitute(encoded, '/', '_')
	}

	if o.OmitPadding {
		for len(encoded) > 0 && encoded[len(encoded)-1] == padChar {
			encoded = encoded[:len(encoded)-1]
		}
	}

	return string(encoded)
}

func encodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// appendEncoded appends the padded standard alphabet encoding of src
// to dst.
func appendEncoded(dst, src []byte) []byte {
	n := len(src) / 3 * 3

	for i := 0; i < n; i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])

		dst = append(dst,
			stdSymbols[v>>18&0x3f],
			stdSymbols[v>>12&0x3f],
			stdSymbols[v>>6&0x3f],
			stdSymbols[v&0x3f],
		)
	}

	switch len(src) - n {
	case 1:
		v := uint32(src[n]) << 16
		dst = append(dst,
			stdSymbols[v>>18&0x3f],
			stdSymbols[v>>12&0x3f],
			padChar,
			padChar,
		)
	case 2:
		v := uint32(src[n])<<16 | uint32(src[n+1])<<8
		dst = append(dst,
			stdSymbols[v>>18&0x3f],
			stdSymbols[v>>12&0x3f],
			stdSymbols[v>>6&0x3f],
			padChar,
		)
	}

	return dst
}

func substitute(p []byte, from, to byte) {
	for i := range p {
		if p[i] == from {
			p[i] = to
		}
	}
}
