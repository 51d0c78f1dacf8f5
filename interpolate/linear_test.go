package interpolate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/scijo/interpolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"
)

var (
	knotsX = []float64{0, 1, 2.5, 4}
	knotsY = []float64{1, 3, 0, 6}
)

func TestLinear_Knots(t *testing.T) {
	l, err := interpolate.NewLinear(knotsX, knotsY)
	require.NoError(t, err)
	for i, x := range knotsX {
		y, err := l.At(x)
		require.NoError(t, err)
		assert.Equal(t, knotsY[i], y)
	}
	lo, hi := l.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)
}

func TestLinear_Midpoints(t *testing.T) {
	l, err := interpolate.NewLinear(knotsX, knotsY)
	require.NoError(t, err)
	got, err := l.Eval([]float64{0.5, 1.75, 3.25})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1.5, 3}, got, 1e-15)
}

func TestLinear_MatchesGonumClamped(t *testing.T) {
	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(knotsX, knotsY))
	l, err := interpolate.NewLinear(knotsX, knotsY, interpolate.WithPolicy(interpolate.Clamp))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < 200; i++ {
		x := rng.Float64()*6 - 1
		got, err := l.At(x)
		require.NoError(t, err)
		assert.InDelta(t, pl.Predict(x), got, 1e-12, "x=%g", x)
	}
}

func TestLinear_Policies(t *testing.T) {
	cases := []struct {
		name   string
		opt    interpolate.Option
		lo, hi float64
	}{
		{"clamp", interpolate.WithPolicy(interpolate.Clamp), 1, 6},
		{"extrapolate", interpolate.WithPolicy(interpolate.Extrapolate), -1, 10},
		{"fill", interpolate.WithFill(-7), -7, -7},
	}
	for _, tc := range cases {
		l, err := interpolate.NewLinear(knotsX, knotsY, tc.opt)
		require.NoError(t, err)
		y, err := l.At(-1)
		require.NoError(t, err)
		assert.InDelta(t, tc.lo, y, 1e-15, tc.name)
		y, err = l.At(5)
		require.NoError(t, err)
		assert.InDelta(t, tc.hi, y, 1e-15, tc.name)
	}

	l, err := interpolate.NewLinear(knotsX, knotsY, interpolate.WithFill(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, interpolate.Fill, l.Policy())
	y, err := l.At(100)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(y))
}

func TestLinear_RaiseByDefault(t *testing.T) {
	l, err := interpolate.NewLinear(knotsX, knotsY)
	require.NoError(t, err)
	assert.Equal(t, interpolate.Raise, l.Policy())
	_, err = l.At(4.0001)
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange)
	_, err = l.Eval([]float64{1, -3})
	assert.ErrorIs(t, err, interpolate.ErrOutOfRange)
	_, err = l.At(math.NaN())
	assert.ErrorIs(t, err, interpolate.ErrNonFinite)
}

func TestNewLinear_Validation(t *testing.T) {
	_, err := interpolate.NewLinear([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints)
	_, err = interpolate.NewLinear([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, interpolate.ErrLengthMismatch)
	_, err = interpolate.NewLinear([]float64{1, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, interpolate.ErrNotIncreasing)
	_, err = interpolate.NewLinear([]float64{1, math.Inf(1)}, []float64{1, 2})
	assert.ErrorIs(t, err, interpolate.ErrNonFinite)

	assert.Panics(t, func() { interpolate.WithPolicy(interpolate.Fill) })
	assert.Equal(t, "extrapolate", interpolate.Extrapolate.String())
}

func TestLinear_CopiesInput(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 10}
	l, err := interpolate.NewLinear(xs, ys)
	require.NoError(t, err)
	ys[1] = -10
	y, err := l.At(0.5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, y)
}

func TestInterp(t *testing.T) {
	got, err := interpolate.Interp([]float64{-1, 0.5, 2, 9}, []float64{0, 1, 3}, []float64{0, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2.5, 3}, got, 1e-15)

	_, err = interpolate.Interp([]float64{1}, []float64{0}, []float64{0})
	assert.ErrorIs(t, err, interpolate.ErrTooFewPoints)
}
