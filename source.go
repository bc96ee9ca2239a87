package instream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrian-budau/input-stream/debug"
)

// Source is the buffered byte capability a Stream draws tokens from. Fill
// returns a view of the bytes currently available without consuming them,
// reading from the underlying input only when the window is empty; it
// returns io.EOF once the source is exhausted. Consume marks the first n
// bytes of the most recent window as read.
//
// Errors whose chain exposes Temporary() bool reporting true are treated as
// transient by the scan engine and retried without surfacing.
type Source interface {
	io.Reader
	Fill() ([]byte, error)
	Consume(n int)
}

const (
	defaultBufferSize = 4096
	maxEmptyReads     = 100
)

// Reader adapts an io.Reader into a Source using an internal window buffer.
type Reader struct {
	rd   io.Reader
	buf  []byte
	r, w int
	err  error
}

// NewReader returns a Reader over rd with the default buffer size.
func NewReader(rd io.Reader) *Reader {
	return NewReaderSize(rd, defaultBufferSize)
}

// NewReaderSize is NewReader with an explicit buffer size.
func NewReaderSize(rd io.Reader, size int) *Reader {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Reader{rd: rd, buf: make([]byte, size)}
}

// Fill returns the buffered window, reading more input when it is empty.
// The window stays valid until the next Fill or Read. Terminal read errors
// are sticky; transient ones are returned but not latched, so a retried
// Fill can succeed.
func (b *Reader) Fill() ([]byte, error) {
	if b.r < b.w {
		return b.buf[b.r:b.w], nil
	}
	if b.err != nil {
		return nil, b.err
	}
	b.r, b.w = 0, 0
	for i := 0; i < maxEmptyReads; i++ {
		n, err := b.rd.Read(b.buf)
		if n < 0 {
			panic("instream: reader returned negative count")
		}
		if n > 0 {
			b.w = n
			if err != nil && !temporary(err) {
				b.err = err
			}
			if debug.Fill() {
				fmt.Fprintf(os.Stderr, "instream: fill %d bytes\n", n)
			}
			return b.buf[:n], nil
		}
		if err != nil {
			if !temporary(err) {
				b.err = err
			}
			return nil, err
		}
	}
	b.err = io.ErrNoProgress
	return nil, b.err
}

// Consume marks n bytes of the current window as read. n is clamped to the
// window.
func (b *Reader) Consume(n int) {
	if n < 0 {
		n = 0
	}
	if n > b.w-b.r {
		n = b.w - b.r
	}
	b.r += n
}

// Read drains the buffered window before reading from the underlying reader
// directly.
func (b *Reader) Read(p []byte) (int, error) {
	if b.r < b.w {
		n := copy(p, b.buf[b.r:b.w])
		b.r += n
		return n, nil
	}
	if b.err != nil {
		return 0, b.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := b.rd.Read(p)
	if err != nil && !temporary(err) {
		b.err = err
	}
	return n, err
}

// temporary reports whether err is a transient condition, following the
// Temporary convention used by net.Error.
func temporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}
