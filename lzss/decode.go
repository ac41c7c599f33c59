package lzss

// Decode decompresses src into a new buffer of the length declared in the
// stream's varint header. Empty input yields empty output.
//
// Decode trusts a well-formed stream: offsets and lengths are not checked
// against the output produced so far, and a stream whose tokens reach outside
// it will panic on a slice index rather than return an error. Exhausting the
// input mid-token returns ErrOutOfBounds.
func Decode(cfg Config, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	r := newBitReader(src)
	originalLength, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	out := make([]byte, originalLength)

	for pos := 0; pos < len(out); {
		isMatch, err := r.readBit()
		if err != nil {
			return nil, err
		}

		if isMatch {
			offset, err := r.readBits(cfg.offsetBits)
			if err != nil {
				return nil, err
			}
			length, err := r.readBits(cfg.lengthBits)
			if err != nil {
				return nil, err
			}

			// One byte at a time, in increasing index order: when the
			// length exceeds the offset, the source range includes bytes
			// written by this same copy.
			from := pos - int(offset)
			for i := 0; i < int(length); i++ {
				out[pos+i] = out[from+i]
			}
			pos += int(length)
		} else {
			literal, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			out[pos] = byte(literal)
			pos++
		}
	}

	return out, nil
}
