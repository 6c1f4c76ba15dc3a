// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

// Encoder encodes data that arrives in chunks.
//
// Incoming bytes are buffered until a complete group of three is
// available, so a group spanning two chunks is never encoded as a
// partial group. At most two bytes are retained between pushes.
//
// An Encoder must be driven by a single caller. Push and Finish must
// not be called concurrently and Finish must be the last call.
type Encoder struct {
	opts   Options
	buf    []byte
	closed bool
}

// NewEncoder creates a new chunked [Encoder].
func NewEncoder(opts ...Options) *Encoder {
	return &Encoder{opts: getOptions(opts)}
}

// Push adds a chunk and returns the encoded text for all complete
// three byte groups buffered so far. The returned text is empty if
// fewer than three bytes are available.
//
// It returns [ErrClosed] if Finish has been called.
func (e *Encoder) Push(chunk []byte) (string, error) {
	if e.closed {
		return "", ErrClosed
	}

	e.buf = append(e.buf, chunk...)

	n := len(e.buf) / 3 * 3
	if n == 0 {
		return "", nil
	}

	// Complete groups never produce padding, so mid-stream output can
	// be concatenated with later output.
	out := EncodeBytes(e.buf[:n], e.opts)
	e.buf = e.buf[:copy(e.buf, e.buf[n:])]

	return out, nil
}

// PushString is [Encoder.Push] for the UTF-8 bytes of a string chunk.
func (e *Encoder) PushString(chunk string) (string, error) {
	return e.Push([]byte(chunk))
}

// Finish encodes the remaining one or two buffered bytes as the final,
// padded group and closes the Encoder. The returned text is empty if
// no bytes are buffered.
//
// It returns [ErrClosed] if Finish has been called before.
func (e *Encoder) Finish() (string, error) {
	if e.closed {
		return "", ErrClosed
	}

	e.closed = true

	out := EncodeBytes(e.buf, e.opts)
	e.buf = nil

	return out, nil
}

// Decoder decodes base64 text that arrives in chunks.
//
// Incoming text is normalized like [DecodeBytes] does and buffered
// until a complete group of four symbols is available, so a group
// spanning two chunks is never decoded as a partial group. At most
// three symbols are retained between pushes.
//
// Decoded output is returned as bytes since a group boundary may split
// a multi byte UTF-8 sequence. Callers wanting text concatenate the
// chunks and convert once.
//
// A Decoder must be driven by a single caller. Push and Finish must
// not be called concurrently and Finish must be the last call.
type Decoder struct {
	opts   Options
	buf    []byte
	closed bool
}

// NewDecoder creates a new chunked [Decoder].
func NewDecoder(opts ...Options) *Decoder {
	return &Decoder{opts: getOptions(opts)}
}

// Push adds a text chunk and returns the decoded bytes for all
// complete four symbol groups buffered so far. The returned slice is
// empty if fewer than four symbols are available.
//
// It returns [ErrClosed] if Finish has been called.
func (d *Decoder) Push(chunk string) ([]byte, error) {
	if d.closed {
		return nil, ErrClosed
	}

	d.buf = append(d.buf, normalize([]byte(chunk), d.opts.URLSafe)...)

	n := len(d.buf) / 4 * 4
	if n == 0 {
		return nil, nil
	}

	out := decodeNormalized(d.buf[:n])
	d.buf = d.buf[:copy(d.buf, d.buf[n:])]

	return out, nil
}

// Finish decodes the remaining one to three buffered symbols as the
// final group, restoring missing padding, and closes the Decoder. The
// returned slice is empty if no symbols are buffered.
//
// It returns [ErrClosed] if Finish has been called before.
func (d *Decoder) Finish() ([]byte, error) {
	if d.closed {
		return nil, ErrClosed
	}

	d.closed = true

	out := decodeNormalized(d.buf)
	d.buf = nil

	return out, nil
}
