package instream

import (
	"bufio"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

const benchNumbers = 100000

func generateInts(n int) string {
	var sb strings.Builder
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(int(r.Int31()) - 1<<30))
	}
	return sb.String()
}

func generateFloats(n int) string {
	var sb strings.Builder
	r := rand.New(rand.NewSource(2))
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(r.NormFloat64(), 'g', -1, 64))
	}
	return sb.String()
}

func BenchmarkNextInt(b *testing.B) {
	input := generateInts(benchNumbers)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewFromReader(strings.NewReader(input))
		count := 0
		for {
			if _, err := Next[int](s); err != nil {
				break
			}
			count++
		}
		if count != benchNumbers {
			b.Fatalf("scanned %d tokens, want %d", count, benchNumbers)
		}
	}
}

func BenchmarkNextFloat64(b *testing.B) {
	input := generateFloats(benchNumbers)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewFromReader(strings.NewReader(input))
		count := 0
		for {
			if _, err := Next[float64](s); err != nil {
				break
			}
			count++
		}
		if count != benchNumbers {
			b.Fatalf("scanned %d tokens, want %d", count, benchNumbers)
		}
	}
}

// BenchmarkScanWordsInt is the bufio.Scanner baseline for comparison.
func BenchmarkScanWordsInt(b *testing.B) {
	input := generateInts(benchNumbers)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := bufio.NewScanner(strings.NewReader(input))
		sc.Split(bufio.ScanWords)
		count := 0
		for sc.Scan() {
			if _, err := strconv.Atoi(sc.Text()); err != nil {
				b.Fatal(err)
			}
			count++
		}
		if count != benchNumbers {
			b.Fatalf("scanned %d tokens, want %d", count, benchNumbers)
		}
	}
}
