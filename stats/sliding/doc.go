// Package sliding provides windowed statistics over numeric sequences:
// sliding-window averaging, sliding cross-correlation, and a streaming
// fixed-window accumulator.
//
// All functions are pure: they read only their arguments and allocate
// only their results, so concurrent callers need no coordination.
// Inputs are generic over the fixed-width integer and floating-point
// sample types ([Real]); accumulation and results are always float64.
//
// # Window policy
//
// A window size w is valid when 1 <= w <= n for input length n (for
// cross-correlation n is the length of the shorter sequence). Invalid
// window sizes and empty inputs are rejected with [ErrInvalidWindow]
// and [ErrEmptyInput]; results are never silently clamped, truncated,
// or zero-padded.
//
// # Usage
//
//	avg, err := sliding.Average([]float64{1, 2, 3, 4, 5}, 3)
//	// avg == [2 3 4]
//
//	corr, err := sliding.CrossCorrelate(a, b, 16, sliding.WithNormalized())
//
// [Average] maintains a running sum, adding the entering sample and
// subtracting the leaving one, so it runs in O(n) rather than O(n*w).
// [CrossCorrelate] computes one dot product per alignment offset,
// O(n*w) overall.
//
// # Correlation contract
//
// CrossCorrelate aligns a[i..i+w) with b[i..i+w) for every offset i in
// [0, min(len(a), len(b)) - w]. The default value at each offset is
// the raw dot product of the two windows. With [WithNormalized] each
// value is divided by the product of the two window L2 norms (cosine
// similarity, no mean centering), giving values in [-1, 1]; a window
// with zero norm yields 0 at that offset.
package sliding
