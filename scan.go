package instream

import (
	"strconv"
	"unicode/utf8"
)

// Value enumerates the types Next and NextLimit produce directly. Other
// types go through NextFunc with their own parse function.
type Value interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Next extracts the next whitespace-delimited token from s and parses it
// as T.
//
// At exhaustion the token is empty: Next[string] returns "" with a nil
// error, every other type reports ErrParse. That is the end-of-stream
// signal; the engine does not turn exhaustion into an I/O error.
func Next[T Value](s *Stream) (T, error) {
	return NextFunc(s, parseValue[T])
}

// NextLimit is Next with a cap on the token's raw byte length. Exceeding
// the cap reports ErrTokenTooLong with the offending token only partially
// consumed: bytes the engine already pulled from the source stay consumed,
// leaving the source mid-token. A subsequent uncapped scan picks up the
// remainder. A negative limit is clamped to 0, not treated as "no cap";
// use Next for unlimited scanning.
func NextLimit[T Value](s *Stream, limit int) (T, error) {
	return NextFuncLimit(s, limit, parseValue[T])
}

// NextFunc extracts the next token and converts it with parse.
func NextFunc[T any](s *Stream, parse func(string) (T, error)) (T, error) {
	return next(s, -1, parse)
}

// NextFuncLimit is NextFunc with a cap on the token's raw byte length. A
// negative limit is clamped to 0, so it caps rather than disabling the cap;
// use NextFunc for unlimited scanning.
func NextFuncLimit[T any](s *Stream, limit int, parse func(string) (T, error)) (T, error) {
	if limit < 0 {
		limit = 0
	}
	return next(s, limit, parse)
}

func next[T any](s *Stream, limit int, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, err := s.token(limit)
	if err != nil {
		return zero, err
	}
	text, err := decodeToken(raw)
	if err != nil {
		return zero, err
	}
	v, err := parse(text)
	if err != nil {
		return zero, parseErr(err)
	}
	return v, nil
}

// decodeToken drops a single trailing space byte, if present, and validates
// the rest as UTF-8. Only the last byte is ever trimmed, and only when it
// is exactly 0x20; other delimiter bytes never reach the accumulator.
func decodeToken(raw []byte) (string, error) {
	if n := len(raw); n > 0 && raw[n-1] == ' ' {
		raw = raw[:n-1]
	}
	if !utf8.Valid(raw) {
		return "", utf8Err()
	}
	return string(raw), nil
}

func parseValue[T Value](text string) (T, error) {
	var (
		v   T
		err error
	)
	switch p := any(&v).(type) {
	case *string:
		*p = text
	case *bool:
		*p, err = strconv.ParseBool(text)
	case *int:
		var n int64
		n, err = strconv.ParseInt(text, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(text, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(text, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(text, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(text, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(text, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(text, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(text, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(text, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(text, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(text, 64)
	}
	return v, err
}
