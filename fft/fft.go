package fft

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// FFT returns the discrete Fourier transform of x.
func FFT(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	out := append([]complex128(nil), x...)
	transform(out, false)

	return out, nil
}

// IFFT returns the inverse discrete Fourier transform of x, scaled by 1/n.
func IFFT(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	out := append([]complex128(nil), x...)
	transform(out, true)
	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// RFFT returns the n/2+1 non-negative frequency terms of the transform of a
// real sequence. The remaining terms are their complex conjugates.
func RFFT(x []float64) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	buf := make([]complex128, len(x))
	for i, v := range x {
		buf[i] = complex(v, 0)
	}
	transform(buf, false)

	return buf[:len(x)/2+1 : len(x)/2+1], nil
}

// FFTFreq returns the sample frequencies of an n-point transform with sample
// spacing d: [0, 1, …, ⌈n/2⌉−1, −⌊n/2⌋, …, −1] / (d·n).
func FFTFreq(n int, d float64) ([]float64, error) {
	if n < 1 {
		return nil, ErrBadLength
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return nil, ErrBadSpacing
	}
	out := make([]float64, n)
	val := 1 / (d * float64(n))
	half := (n-1)/2 + 1
	for i := 0; i < half; i++ {
		out[i] = float64(i) * val
	}
	for i := half; i < n; i++ {
		out[i] = float64(i-n) * val
	}

	return out, nil
}

// transform runs the unnormalized transform of a in place.
func transform(a []complex128, inverse bool) {
	n := len(a)
	switch {
	case n == 1:
		return
	case n&(n-1) == 0:
		radix2(a, inverse)
	default:
		bluestein(a, inverse)
	}
}

// radix2 is the iterative Cooley–Tukey transform; len(a) must be a power of two.
func radix2(a []complex128, inverse bool) {
	n := len(a)
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}

	sign := -1.0
	if inverse {
		sign = 1
	}
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := sign * 2 * math.Pi / float64(size)
		for k := 0; k < half; k++ {
			// Twiddles are computed directly to avoid drift from repeated products.
			w := cmplx.Rect(1, step*float64(k))
			for start := 0; start < n; start += size {
				u := a[start+k]
				v := a[start+k+half] * w
				a[start+k] = u + v
				a[start+k+half] = u - v
			}
		}
	}
}

// bluestein rewrites the length-n transform as a circular convolution of
// length m ≥ 2n−1 (a power of two) using jk = (j² + k² − (k−j)²)/2.
func bluestein(a []complex128, inverse bool) {
	n := len(a)
	m := 1 << bits.Len(uint(2*n-2))

	sign := -1.0
	if inverse {
		sign = 1
	}
	// chirp[k] = exp(sign·iπk²/n); k² is reduced mod 2n to keep the angle small.
	chirp := make([]complex128, n)
	n2 := uint64(2 * n)
	for k := 0; k < n; k++ {
		kk := (uint64(k) * uint64(k)) % n2
		chirp[k] = cmplx.Rect(1, sign*math.Pi*float64(kk)/float64(n))
	}

	u := make([]complex128, m)
	v := make([]complex128, m)
	for k := 0; k < n; k++ {
		u[k] = a[k] * chirp[k]
	}
	v[0] = cmplx.Conj(chirp[0])
	for k := 1; k < n; k++ {
		c := cmplx.Conj(chirp[k])
		v[k] = c
		v[m-k] = c
	}

	radix2(u, false)
	radix2(v, false)
	for i := range u {
		u[i] *= v[i]
	}
	radix2(u, true)

	scale := complex(1/float64(m), 0)
	for k := 0; k < n; k++ {
		a[k] = u[k] * scale * chirp[k]
	}
}
