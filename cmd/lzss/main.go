// Command lzss round-trips a file through the LZSS codec and verifies that
// the decoded output is identical to the original. It exits non-zero on any
// mismatch, so it can be pointed at a corpus from a shell loop.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitpress/pack/lzss"
	"github.com/pierrec/xxHash/xxHash32"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file>\n", os.Args[0])
		os.Exit(2)
	}

	input, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := lzss.DefaultConfig()

	compressed, err := lzss.Encode(cfg, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}

	decoded, err := lzss.Decode(cfg, compressed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}

	if !bytes.Equal(decoded, input) {
		for i := range input {
			if i >= len(decoded) || decoded[i] != input[i] {
				fmt.Fprintf(os.Stderr, "round trip mismatch at byte %d\n", i)
				break
			}
		}
		os.Exit(1)
	}

	inHash := xxHash32.Checksum(input, 0)
	outHash := xxHash32.Checksum(decoded, 0)
	if inHash != outHash {
		fmt.Fprintf(os.Stderr, "content hash mismatch: %08x != %08x\n", inHash, outHash)
		os.Exit(1)
	}

	ratio := 0.0
	if len(input) > 0 {
		ratio = float64(len(compressed)) / float64(len(input))
	}
	fmt.Printf("%s: %d -> %d bytes (%.1f%%), xxh32 %08x\n",
		os.Args[1], len(input), len(compressed), ratio*100, inHash)
}
