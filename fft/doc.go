// Package fft computes discrete Fourier transforms of complex and real
// sequences of any length.
//
// Conventions follow the common "backward" normalization:
//
//	FFT:  X[k] = Σ_{j} x[j]·exp(−2πi·jk/n)       (unnormalized)
//	IFFT: x[j] = (1/n)·Σ_{k} X[k]·exp(+2πi·jk/n)
//
// Power-of-two lengths use an iterative radix-2 Cooley–Tukey transform.
// Other lengths are reduced to a power-of-two circular convolution with
// Bluestein's chirp-z algorithm, so every length costs O(n log n).
//
// Inputs are never modified; every call returns a fresh slice.
package fft
