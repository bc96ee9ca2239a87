package instream

import (
	"errors"
	"fmt"
)

var (
	ErrIO           = errors.New("input error")
	ErrBadUTF8      = errors.New("bad utf8")
	ErrParse        = errors.New("parse")
	ErrTokenTooLong = errors.New("token over limit")
)

// Error is the failure value returned by the scan operations. Kind is always
// one of the Err* sentinels above; Cause, when non-nil, is the underlying
// fault. Both are reachable through errors.Is and errors.As.
type Error struct {
	Kind  error
	Cause error

	// set when Kind is ErrTokenTooLong
	Limit, Size int
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrTokenTooLong:
		return fmt.Sprintf("%s: token needs %d bytes, limit is %d",
			e.Kind.Error(), e.Size, e.Limit)
	case e.Cause != nil:
		return e.Kind.Error() + ": " + e.Cause.Error()
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func ioErr(cause error) error {
	return &Error{Kind: ErrIO, Cause: cause}
}

func utf8Err() error {
	return &Error{Kind: ErrBadUTF8}
}

func parseErr(cause error) error {
	return &Error{Kind: ErrParse, Cause: cause}
}

func limitErr(limit, size int) error {
	return &Error{Kind: ErrTokenTooLong, Limit: limit, Size: size}
}
