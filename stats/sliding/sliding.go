package sliding

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by windowed statistics functions.
var (
	ErrEmptyInput    = errors.New("sliding: empty input")
	ErrInvalidWindow = errors.New("sliding: invalid window size")
)

// Real is the set of sample types accepted by the windowed functions.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// toFloat64 widens s into a freshly allocated float64 slice.
func toFloat64[T Real](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}

// Average computes the sliding-window arithmetic mean of s. The result
// has length len(s)-w+1; element i is the mean of s[i..i+w).
//
// The window sum is maintained incrementally (add the entering sample,
// subtract the leaving one), so the cost is O(n) independent of w.
// Accumulation is in float64 regardless of the input sample type.
//
// Returns ErrEmptyInput for an empty sequence and ErrInvalidWindow
// when w < 1 or w > len(s).
func Average[T Real](s []T, w int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	if w < 1 || w > len(s) {
		return nil, fmt.Errorf("%w: %d for sequence length %d", ErrInvalidWindow, w, len(s))
	}

	f := toFloat64(s)
	out := make([]float64, len(f)-w+1)

	sum := vecmath.Sum(f[:w])
	out[0] = sum / float64(w)

	for i := 1; i < len(out); i++ {
		sum += f[i+w-1] - f[i-1]
		out[i] = sum / float64(w)
	}

	return out, nil
}

// Mean returns the arithmetic mean of the whole sequence, using Kahan
// summation to bound rounding error growth.
// Returns ErrEmptyInput for an empty sequence.
func Mean[T Real](s []T) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	var sum, c float64
	for _, v := range s {
		x := float64(v)
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(s)), nil
}
