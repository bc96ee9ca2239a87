package instream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrian-budau/input-stream/debug"
)

// Stream wraps a Source with a reusable token accumulator. It owns the
// source for its lifetime. A Stream is not safe for concurrent use; callers
// sharing one must serialize access themselves.
type Stream struct {
	src Source
	acc []byte
}

// New returns a Stream drawing tokens from src.
func New(src Source) *Stream {
	return &Stream{src: src}
}

// NewFromReader wraps rd in a buffered Source and returns a Stream over it.
// If rd already implements Source no extra buffering is added.
func NewFromReader(rd io.Reader) *Stream {
	if src, ok := rd.(Source); ok {
		return New(src)
	}
	return New(NewReader(rd))
}

// token carves the raw bytes of the next token out of the source: a skip
// pass over the delimiter prefix, then an accumulate pass collecting
// non-delimiter bytes into the reusable accumulator. limit < 0 means no
// cap. The returned slice aliases the accumulator and is only valid until
// the next call.
func (s *Stream) token(limit int) ([]byte, error) {
	if err := s.skip(); err != nil {
		return nil, err
	}
	s.acc = s.acc[:0]
	if err := s.accumulate(limit); err != nil {
		return nil, err
	}
	if debug.Scan() {
		fmt.Fprintf(os.Stderr, "instream: token %q\n", s.acc)
	}
	return s.acc, nil
}

// skip consumes the source's delimiter prefix. It ends on the first
// non-delimiter byte or on exhaustion.
func (s *Stream) skip() error {
	for {
		win, err := s.fetch()
		if err != nil {
			return err
		}
		n := 0
		for n < len(win) && isSpace(win[n]) {
			n++
		}
		s.src.Consume(n)
		if n < len(win) || len(win) == 0 {
			return nil
		}
	}
}

// accumulate appends the source's non-delimiter prefix to the accumulator,
// ending on a delimiter byte or exhaustion. A breached limit fails before
// the current window is appended or consumed; what earlier rounds consumed
// stands.
func (s *Stream) accumulate(limit int) error {
	for {
		win, err := s.fetch()
		if err != nil {
			return err
		}
		n := 0
		for n < len(win) && !isSpace(win[n]) {
			n++
		}
		if n > 0 {
			if limit >= 0 && len(s.acc)+n > limit {
				return limitErr(limit, len(s.acc)+n)
			}
			s.acc = append(s.acc, win[:n]...)
		}
		s.src.Consume(n)
		if n < len(win) || len(win) == 0 {
			return nil
		}
	}
}

// fetch wraps Fill, absorbing transient errors and mapping exhaustion to an
// empty window.
func (s *Stream) fetch() ([]byte, error) {
	for {
		win, err := s.src.Fill()
		switch {
		case err == nil:
			return win, nil
		case errors.Is(err, io.EOF):
			return nil, nil
		case temporary(err):
			continue
		default:
			return nil, ioErr(err)
		}
	}
}

// Read reads directly from the underlying source, bypassing tokenization.
func (s *Stream) Read(p []byte) (int, error) {
	return s.src.Read(p)
}

// Fill exposes the underlying source's window, so a Stream can itself serve
// as a Source for another layer.
func (s *Stream) Fill() ([]byte, error) {
	return s.src.Fill()
}

// Consume forwards to the underlying source.
func (s *Stream) Consume(n int) {
	s.src.Consume(n)
}
