/*
Package lzss implements a bit-packed LZSS block codec.

A compressed block is a VLQ varint holding the original length, followed by a
sequence of tokens, packed most-significant-bit first:

	0 + 8 literal bits
	1 + offsetBits of backward offset + lengthBits of match length

Token widths and the minimum match length come from a Config; the format has
no header, so both sides of a round trip must use the same Config. Matches may
be longer than their offset (the decoder replays bytes written earlier in the
same copy), which compresses runs.

Encode and Decode work on whole blocks and keep no state, so independent calls
are safe from multiple goroutines.
*/
package lzss
