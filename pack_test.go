package pack

import (
	"math/rand"
	"testing"
)

func TestWindowGreedyTokens(t *testing.T) {
	src := []byte("abcabcabc")
	mf := &WindowGreedy{MaxDistance: 1023, MaxLength: 63, MinLength: 2}
	matches := mf.FindMatches(nil, src)

	want := []Match{
		{Unmatched: 3, Length: 6, Distance: 3},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %v", len(matches), len(want), matches)
	}
	for i, m := range matches {
		if m != want[i] {
			t.Errorf("match %d: got %+v, want %+v", i, m, want[i])
		}
	}

	var te TextEncoder
	text := te.Encode(nil, src, matches)
	if string(text) != "abc<6,3>" {
		t.Errorf("TextEncoder output: got %q, want %q", text, "abc<6,3>")
	}
}

func TestWindowGreedyTieBreak(t *testing.T) {
	// "ab" appears at offsets 0, 4 and 8. The match at position 8 has two
	// length-2 candidates; the nearer one (distance 4, not 8) must win.
	src := []byte("abZZabWWabQ")
	mf := &WindowGreedy{MaxDistance: 1023, MaxLength: 63, MinLength: 2}
	matches := mf.FindMatches(nil, src)

	want := []Match{
		{Unmatched: 4, Length: 2, Distance: 4},
		{Unmatched: 2, Length: 2, Distance: 4},
		{Unmatched: 1},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %v, want %v", matches, want)
	}
	for i, m := range matches {
		if m != want[i] {
			t.Errorf("match %d: got %+v, want %+v", i, m, want[i])
		}
	}
}

func TestWindowGreedyLengthClamp(t *testing.T) {
	src := make([]byte, 200) // all zero: one long run
	mf := &WindowGreedy{MaxDistance: 1023, MaxLength: 63, MinLength: 2}
	matches := mf.FindMatches(nil, src)

	if len(matches) == 0 || matches[0].Unmatched != 1 {
		t.Fatalf("expected a leading literal, got %v", matches)
	}
	if m := matches[0]; m.Length != 63 || m.Distance != 1 {
		t.Errorf("first match: got %+v, want Length=63 Distance=1", m)
	}
	for _, m := range matches {
		if m.Length > 63 {
			t.Errorf("match length %d exceeds MaxLength", m.Length)
		}
	}
}

func TestWindowGreedyTokenLegality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	src := make([]byte, 5000)
	for i := range src {
		src[i] = "abcd"[rng.Intn(4)]
	}

	mf := &WindowGreedy{MaxDistance: 255, MaxLength: 63, MinLength: 2}
	matches := mf.FindMatches(nil, src)

	pos := 0
	for _, m := range matches {
		pos += m.Unmatched
		if m.Length == 0 {
			continue
		}
		if m.Length < 2 || m.Length > 63 {
			t.Fatalf("illegal length %d at pos %d", m.Length, pos)
		}
		if m.Distance < 1 || m.Distance > 255 {
			t.Fatalf("illegal distance %d at pos %d", m.Distance, pos)
		}
		for i := 0; i < m.Length; i++ {
			if src[pos+i] != src[pos-m.Distance+i] {
				t.Fatalf("match at pos %d does not describe src", pos)
			}
		}
		pos += m.Length
	}
	if pos != len(src) {
		t.Fatalf("tokens cover %d bytes, want %d", pos, len(src))
	}
}
