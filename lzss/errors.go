package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrOutOfBounds   = errors.New("lzss: bit stream out of bounds")
	ErrInvalidConfig = errors.New("lzss: invalid config")
)
