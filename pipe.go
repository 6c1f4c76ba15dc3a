// SPDX-FileCopyrightText: 2025 Shahrad Elahi
//
// SPDX-License-Identifier: MIT

package base64

import (
	"fmt"
	"io"
)

// NewWriter returns a writer that encodes everything written to it and
// writes the base64 text to w.
//
// The caller must close the writer to flush the final, padded group.
// Closing does not close w. Close is idempotent.
func NewWriter(w io.Writer, opts ...Options) io.WriteCloser {
	return &pipeWriter{
		enc: NewEncoder(opts...),
		w:   w,
	}
}

type pipeWriter struct {
	enc    *Encoder
	w      io.Writer
	closed bool
}

// Write implements [io.Writer].
func (p *pipeWriter) Write(data []byte) (int, error) {
	out, err := p.enc.Push(data)
	if err != nil {
		return 0, err
	}

	err = writeAll(p.w, out)
	if err != nil {
		return 0, err
	}

	return len(data), nil
}

// Close implements [io.Closer]. It flushes the final group.
func (p *pipeWriter) Close() error {
	if p.closed {
		return nil
	}

	p.closed = true

	out, err := p.enc.Finish()
	if err != nil {
		return err
	}

	return writeAll(p.w, out)
}

func writeAll(w io.Writer, out string) error {
	if out == "" {
		return nil
	}

	n, err := io.WriteString(w, out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}

	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// NewReader returns a reader that reads base64 text from r and yields
// the decoded bytes.
//
// Decoding is as permissive as [DecodeBytes], so the reader never
// fails on malformed text. It returns [io.EOF] once r is exhausted and
// the final group has been flushed.
func NewReader(r io.Reader, opts ...Options) io.Reader {
	return &pipeReader{
		dec: NewDecoder(opts...),
		r:   r,
	}
}

type pipeReader struct {
	dec *Decoder
	r   io.Reader
	out []byte
	err error
}

// Read implements [io.Reader].
func (p *pipeReader) Read(data []byte) (int, error) {
	for len(p.out) == 0 && p.err == nil {
		p.fill(data)
	}

	if len(p.out) > 0 {
		n := copy(data, p.out)
		p.out = p.out[:copy(p.out, p.out[n:])]

		return n, nil
	}

	return 0, p.err
}

// fill reads one chunk from the source into the output buffer. On the
// source's EOF the final group is flushed exactly once.
func (p *pipeReader) fill(data []byte) {
	buf := data
	if len(buf) == 0 {
		buf = make([]byte, 512)
	}

	n, err := p.r.Read(buf)
	if n > 0 {
		out, _ := p.dec.Push(string(buf[:n]))
		p.out = append(p.out, out...)
	}

	if err != nil {
		p.err = err

		out, ferr := p.dec.Finish()
		if ferr == nil {
			p.out = append(p.out, out...)
		}
	}
}
