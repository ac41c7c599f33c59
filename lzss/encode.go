package lzss

import (
	"github.com/bitpress/pack"
)

// Encode compresses src into a new buffer. Empty input yields empty output.
// The result is a pure function of (cfg, src): the match search is
// exhaustive and its tie-break is fixed, so repeated calls are
// byte-identical.
func Encode(cfg Config, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	out := make([]byte, cfg.UpperBound(len(src)))
	w := newBitWriter(out)

	if err := w.writeVarint(uint32(len(src))); err != nil {
		return nil, err
	}

	mf := &pack.WindowGreedy{
		MaxDistance: cfg.maxOffset,
		MaxLength:   cfg.maxLength,
		MinLength:   cfg.minLength,
	}
	matches := mf.FindMatches(nil, src)

	pos := 0
	for _, m := range matches {
		for end := pos + m.Unmatched; pos < end; pos++ {
			if err := w.writeBit(false); err != nil {
				return nil, err
			}
			if err := w.writeBits(uint32(src[pos]), 8); err != nil {
				return nil, err
			}
		}
		if m.Length > 0 {
			if err := w.writeBit(true); err != nil {
				return nil, err
			}
			if err := w.writeBits(uint32(m.Distance), cfg.offsetBits); err != nil {
				return nil, err
			}
			if err := w.writeBits(uint32(m.Length), cfg.lengthBits); err != nil {
				return nil, err
			}
			pos += m.Length
		}
	}

	n, err := w.flush()
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
