// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

const (
	// AlphabetStd is the standard base64 alphabet defined in RFC 4648
	// section 4, using '+' and '/'.
	AlphabetStd Alphabet = "std"
	// AlphabetURL is the URL and file name safe alphabet defined in
	// RFC 4648 section 5, using '-' and '_'.
	AlphabetURL Alphabet = "url"
)

// Alphabet selects one of the two base64 symbol sets.
type Alphabet string

func (a *Alphabet) isKnown() bool {
	return *a == AlphabetStd || *a == AlphabetURL
}

// String implements [fmt.Stringer].
func (a *Alphabet) String() string {
	if !a.isKnown() {
		return ""
	}

	return string(*a)
}

// MarshalText implements [encoding.TextMarshaler].
func (a Alphabet) MarshalText() ([]byte, error) {
	s := a.String()
	if s == "" {
		return nil, ErrAlphabetInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Alphabet) UnmarshalText(text []byte) error {
	alphabet := Alphabet(text)

	if !alphabet.isKnown() {
		return ErrAlphabetInvalid
	}

	*a = alphabet

	return nil
}

// Options returns the codec options selecting this alphabet.
func (a *Alphabet) Options() Options {
	return Options{URLSafe: *a == AlphabetURL}
}

const (
	stdSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789+/"

	padChar = '='
)

// inverseTable maps a byte to its 6 bit value in the standard alphabet,
// or -1 for bytes outside of it. Derived once, read-only afterwards.
var inverseTable [256]int8

func init() {
	for i := range inverseTable {
		inverseTable[i] = -1
	}

	for i := 0; i < len(stdSymbols); i++ {
		inverseTable[stdSymbols[i]] = int8(i)
	}
}
