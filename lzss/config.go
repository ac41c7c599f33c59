package lzss

// A Config holds the parameters of the wire format: how many bits a match
// token spends on the backward offset and on the length, and the shortest
// match worth emitting. The format carries no header, so the encoder and the
// decoder of a stream must be given an identical Config; decoding with a
// mismatched Config is not detected and produces garbage.
type Config struct {
	offsetBits uint8
	lengthBits uint8
	minLength  int

	maxOffset int
	maxLength int
}

// NewConfig returns a Config with the given token widths and minimum match
// length. offsetBits and lengthBits must each be in 1..16, and minLength must
// be at least 1 and representable in lengthBits.
func NewConfig(offsetBits, lengthBits uint8, minLength int) (Config, error) {
	if offsetBits < 1 || offsetBits > 16 || lengthBits < 1 || lengthBits > 16 {
		return Config{}, ErrInvalidConfig
	}
	maxLength := 1<<lengthBits - 1
	if minLength < 1 || minLength > maxLength {
		return Config{}, ErrInvalidConfig
	}

	return Config{
		offsetBits: offsetBits,
		lengthBits: lengthBits,
		minLength:  minLength,
		maxOffset:  1<<offsetBits - 1,
		maxLength:  maxLength,
	}, nil
}

// DefaultConfig returns the reference parameters: 10 offset bits (window of
// 1023 bytes), 6 length bits (matches up to 63 bytes), minimum match 2.
func DefaultConfig() Config {
	c, _ := NewConfig(10, 6, 2)
	return c
}

// MaxOffset returns the largest encodable backward offset.
func (c Config) MaxOffset() int { return c.maxOffset }

// MaxLength returns the largest encodable match length.
func (c Config) MaxLength() int { return c.maxLength }

// MinLength returns the shortest match the encoder will emit.
func (c Config) MinLength() int { return c.minLength }

// UpperBound returns the worst-case compressed size for n input bytes:
// 32 bits for the length varint plus 9 bits (flag + literal) per byte.
func (c Config) UpperBound(n int) int {
	return (32 + 9*n + 7) / 8
}
