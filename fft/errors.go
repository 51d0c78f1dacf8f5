package fft

import "errors"

var (
	// ErrEmptyInput is returned for a zero-length sequence.
	ErrEmptyInput = errors.New("fft: input is empty")

	// ErrBadLength is returned by FFTFreq for n < 1.
	ErrBadLength = errors.New("fft: length must be >= 1")

	// ErrBadSpacing is returned by FFTFreq for a non-positive or non-finite spacing.
	ErrBadSpacing = errors.New("fft: sample spacing must be positive and finite")
)
