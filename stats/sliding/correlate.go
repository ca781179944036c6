package sliding

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures CrossCorrelate.
type Option func(*config)

type config struct {
	normalized bool
}

// WithNormalized divides each correlation value by the product of the
// two window L2 norms, producing values in [-1, 1]. A window with zero
// norm yields 0 at that offset.
func WithNormalized() Option {
	return func(c *config) {
		c.normalized = true
	}
}

// CrossCorrelate computes the sliding dot product between aligned
// windows of a and b. For each offset i in [0, min(len(a), len(b))-w]
// the result element is the dot product of a[i..i+w) and b[i..i+w);
// offsets where either window would run past its sequence are not
// computed (no zero padding). The sequences need not have equal
// length.
//
// The default is the raw dot product; see WithNormalized for the
// per-window L2 normalization.
//
// Returns ErrEmptyInput when either sequence is empty and
// ErrInvalidWindow when w < 1 or w exceeds the shorter sequence.
func CrossCorrelate[T Real](a, b []T, w int, opts ...Option) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := min(len(a), len(b))
	if w < 1 || w > n {
		return nil, fmt.Errorf("%w: %d for overlap length %d", ErrInvalidWindow, w, n)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	af := toFloat64(a)
	bf := toFloat64(b)
	out := make([]float64, n-w+1)

	for i := range out {
		wa, wb := af[i:i+w], bf[i:i+w]

		dot := vecmath.DotProduct(wa, wb)
		if cfg.normalized {
			norm := math.Sqrt(vecmath.DotProduct(wa, wa) * vecmath.DotProduct(wb, wb))
			if norm == 0 {
				continue
			}
			dot /= norm
		}

		out[i] = dot
	}

	return out, nil
}
