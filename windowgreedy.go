package pack

// WindowGreedy is an implementation of the MatchFinder interface that scans
// every offset in a bounded window instead of using hash tables. It is much
// slower than the hash-based finders, but its output is fully determined by
// its three knobs, which makes it suitable for formats that require a
// reproducible token stream: candidates are scanned from the far end of the
// window toward the cursor, and a tie in length goes to the nearer candidate.
type WindowGreedy struct {
	// MaxDistance is the maximum distance (in bytes) to look back for
	// a match. The default is 65535.
	MaxDistance int

	// MaxLength is the maximum length of a match. The default is 65535.
	MaxLength int

	// MinLength is the shortest length worth emitting as a match;
	// anything shorter is left as literals. The default is 4.
	MinLength int
}

func (w *WindowGreedy) Reset() {}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (w *WindowGreedy) FindMatches(dst []Match, src []byte) []Match {
	if w.MaxDistance == 0 {
		w.MaxDistance = 65535
	}
	if w.MaxLength == 0 {
		w.MaxLength = 65535
	}
	if w.MinLength == 0 {
		w.MinLength = 4
	}

	pos := 0
	unmatched := 0
	for pos < len(src) {
		length, distance := w.search(src, pos)
		if length >= w.MinLength {
			dst = append(dst, Match{
				Unmatched: unmatched,
				Length:    length,
				Distance:  distance,
			})
			unmatched = 0
			pos += length
		} else {
			unmatched++
			pos++
		}
	}

	if unmatched > 0 {
		dst = append(dst, Match{
			Unmatched: unmatched,
		})
	}
	return dst
}

// search returns the length and distance of the best match at pos,
// or (0, 0) if there is none.
func (w *WindowGreedy) search(src []byte, pos int) (length, distance int) {
	if pos+w.MinLength >= len(src) {
		// Too close to the end to ever reach MinLength.
		return 0, 0
	}

	min := 0
	if pos > w.MaxDistance {
		min = pos - w.MaxDistance
	}

	bestLen := 0
	bestStart := pos
	for candidate := min; candidate < pos; candidate++ {
		n := 0
		// The source side of the comparison may run past pos; a match
		// longer than its distance is a self-overlapping copy.
		for candidate+n < len(src) && pos+n < len(src) && src[candidate+n] == src[pos+n] {
			n++
		}
		// >= rather than >, so that of two equally long candidates the
		// one closer to the cursor wins.
		if n >= bestLen {
			bestLen = n
			bestStart = candidate
		}
	}

	if bestLen == 0 {
		return 0, 0
	}
	// Clamp after the scan: a long run still beats a shorter nearer
	// candidate even when both would clamp to the same length.
	if bestLen > w.MaxLength {
		bestLen = w.MaxLength
	}
	return bestLen, pos - bestStart
}
