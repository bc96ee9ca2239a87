package instream

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSimpleStrings(t *testing.T) {
	s := NewFromReader(strings.NewReader("Howdy neighbour, how are you doing?"))
	for _, want := range []string{"Howdy", "neighbour,", "how"} {
		got, err := Next[string](s)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %q want %q", got, want)
		}
	}
}

func TestSimpleNumbers(t *testing.T) {
	s := NewFromReader(strings.NewReader("5 -7 12.5 -2.85"))
	if n, err := Next[int](s); err != nil || n != 5 {
		t.Errorf("got %d, %v want 5", n, err)
	}
	if n, err := Next[int](s); err != nil || n != -7 {
		t.Errorf("got %d, %v want -7", n, err)
	}
	if f, err := Next[float32](s); err != nil || f != 12.5 {
		t.Errorf("got %v, %v want 12.5", f, err)
	}
	if f, err := Next[float32](s); err != nil || f != -2.85 {
		t.Errorf("got %v, %v want -2.85", f, err)
	}
}

func TestNewlines(t *testing.T) {
	s := NewFromReader(strings.NewReader("12\nHello"))
	if n, err := Next[int](s); err != nil || n != 12 {
		t.Errorf("got %d, %v want 12", n, err)
	}
	if w, err := Next[string](s); err != nil || w != "Hello" {
		t.Errorf("got %q, %v want Hello", w, err)
	}
}

// collect drains s into a token slice, stopping at the empty token.
func collect(t *testing.T, s *Stream) []string {
	t.Helper()
	var toks []string
	for {
		tok, err := Next[string](s)
		if err != nil {
			t.Fatal(err)
		}
		if tok == "" {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestSplitMatchesFields(t *testing.T) {
	var inputs = []string{
		"a\tb\nc\vd\fe\rf g",
		"  leading and trailing   \t\n",
		"one",
		"\t\v\f\r\n ",
		"",
		"x\ry\nz",
	}
	for _, in := range inputs {
		got := collect(t, NewFromReader(strings.NewReader(in)))
		want := strings.Fields(in)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("from %q: (-want +got):\n%s", in, d)
		}
	}
}

func TestSmallWindows(t *testing.T) {
	// window smaller than the tokens, so both passes span many fills
	s := New(NewReaderSize(strings.NewReader("   hello   world  "), 2))
	got := collect(t, s)
	if d := cmp.Diff([]string{"hello", "world"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestExhaustion(t *testing.T) {
	s := NewFromReader(strings.NewReader("  \n\t "))
	tok, err := Next[string](s)
	if err != nil || tok != "" {
		t.Errorf("got %q, %v want empty token", tok, err)
	}
	if _, err := Next[int](s); !errors.Is(err, ErrParse) {
		t.Errorf("got %v want ErrParse", err)
	}
}

func TestScanAfterParseError(t *testing.T) {
	s := NewFromReader(strings.NewReader("hello 42"))
	if _, err := Next[int](s); !errors.Is(err, ErrParse) {
		t.Fatalf("got %v want ErrParse", err)
	}
	n, err := Next[int](s)
	if err != nil || n != 42 {
		t.Errorf("got %d, %v want 42", n, err)
	}
}

func TestScanAfterUTF8Error(t *testing.T) {
	s := NewFromReader(strings.NewReader("a\xffb 42"))
	if _, err := Next[string](s); !errors.Is(err, ErrBadUTF8) {
		t.Fatalf("got %v want ErrBadUTF8", err)
	}
	n, err := Next[int](s)
	if err != nil || n != 42 {
		t.Errorf("got %d, %v want 42", n, err)
	}
}

func TestLimit(t *testing.T) {
	s := NewFromReader(strings.NewReader("25 150 -250"))
	if n, err := NextLimit[int](s, 3); err != nil || n != 25 {
		t.Errorf("got %d, %v want 25", n, err)
	}
	if n, err := NextLimit[int](s, 3); err != nil || n != 150 {
		t.Errorf("got %d, %v want 150", n, err)
	}
	_, err := NextLimit[int](s, 3)
	if !errors.Is(err, ErrTokenTooLong) {
		t.Fatalf("got %v want ErrTokenTooLong", err)
	}
	var le *Error
	if !errors.As(err, &le) {
		t.Fatalf("got %T want *Error", err)
	}
	if le.Limit != 3 || le.Size != 4 {
		t.Errorf("got limit %d size %d want 3, 4", le.Limit, le.Size)
	}
	// the oversized token was not consumed past the failing window and an
	// uncapped scan picks it up
	tok, err := Next[string](s)
	if err != nil || tok != "-250" {
		t.Errorf("got %q, %v want -250", tok, err)
	}
}

func TestLimitMidToken(t *testing.T) {
	// tiny windows: the cap trips after part of the token was consumed,
	// leaving the source mid-token
	s := New(NewReaderSize(strings.NewReader("abcdefgh tail"), 3))
	_, err := NextLimit[string](s, 4)
	if !errors.Is(err, ErrTokenTooLong) {
		t.Fatalf("got %v want ErrTokenTooLong", err)
	}
	tok, err := Next[string](s)
	if err != nil {
		t.Fatal(err)
	}
	if tok == "abcdefgh" || !strings.HasSuffix("abcdefgh", tok) {
		t.Errorf("got %q want a proper suffix of abcdefgh", tok)
	}
	if tail, err := Next[string](s); err != nil || tail != "tail" {
		t.Errorf("got %q, %v want tail", tail, err)
	}
}

func TestReadPassThrough(t *testing.T) {
	s := NewFromReader(strings.NewReader("abc def"))
	p := make([]byte, 3)
	n, err := s.Read(p)
	if err != nil || n != 3 || string(p) != "abc" {
		t.Fatalf("got %q, %d, %v", p[:n], n, err)
	}
	if tok, err := Next[string](s); err != nil || tok != "def" {
		t.Errorf("got %q, %v want def", tok, err)
	}
}

func TestNestedStream(t *testing.T) {
	inner := NewFromReader(strings.NewReader("one two three"))
	if tok, err := Next[string](inner); err != nil || tok != "one" {
		t.Fatalf("got %q, %v want one", tok, err)
	}
	// a Stream is a Source, so wrapping adds no second buffer layer
	outer := NewFromReader(inner)
	got := collect(t, outer)
	if d := cmp.Diff([]string{"two", "three"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
