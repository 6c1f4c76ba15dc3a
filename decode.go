// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

// Decode returns the string represented by the given base64 text,
// interpreting the decoded bytes as UTF-8.
//
// Decoding is permissive. See [DecodeBytes].
func Decode(value string, opts ...Options) string {
	return string(DecodeBytes(value, opts...))
}

// DecodeURL is [Decode] with the URL-safe alphabet selected.
func DecodeURL(value string) string {
	return Decode(value, Options{URLSafe: true})
}

// DecodeBytes returns the bytes represented by the given base64 text.
//
// The input is normalized before decoding: with [Options.URLSafe] set,
// '-' and '_' are substituted with '+' and '/', characters outside the
// alphabet are discarded and missing padding is restored. Malformed
// input is never rejected; text whose normalized length is not
// reachable by an encoder decodes to truncated output instead.
func DecodeBytes(value string, opts ...Options) []byte {
	o := getOptions(opts)

	return decodeNormalized(normalize([]byte(value), o.URLSafe))
}

// normalize reduces src in place to the symbols the decode loop
// understands: standard alphabet symbols and padding.
func normalize(src []byte, urlSafe bool) []byte {
	kept := src[:0]

	for _, c := range src {
		if urlSafe {
			switch c {
			case '-':
				c = '+'
			case '_':
				c = '/'
			}
		}

		if inverseTable[c] >= 0 || c == padChar {
			kept = append(kept, c)
		}
	}

	return kept
}

// decodeNormalized decodes normalized text in groups of four symbols.
// A trailing group of fewer than four symbols is treated as if right
// padded.
//
// The first byte of a group is always emitted, the second and third
// only if the corresponding symbol is not the padding marker. Padding
// symbols carry the value 0 for bit packing, so a group that an
// encoder cannot produce yields garbage bytes rather than an error.
func decodeNormalized(src []byte) []byte {
	dst := make([]byte, 0, len(src)/4*3+3)

	for len(src) > 0 {
		var group [4]byte

		n := copy(group[:], src)
		src = src[n:]

		for i := n; i < len(group); i++ {
			group[i] = padChar
		}

		var vals [4]uint32

		for i, c := range group {
			if c != padChar {
				vals[i] = uint32(inverseTable[c])
			}
		}

		dst = append(dst, byte(vals[0]<<2|vals[1]>>4))

		if group[2] != padChar {
			dst = append(dst, byte((vals[1]&0xf)<<4|vals[2]>>2))
		}

		if group[3] != padChar {
			dst = append(dst, byte((vals[2]&0x3)<<6|vals[3]))
		}
	}

	return dst
}
