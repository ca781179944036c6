package sliding

import (
	"fmt"
	"math"
)

// Stats accumulates mean and variance over a fixed-size window of the
// most recent samples. Older samples fall out of the window as new
// ones are pushed. Before the window fills, statistics cover the
// samples seen so far; an empty accumulator reports zero.
//
// Stats is not safe for concurrent use.
type Stats struct {
	window int
	values []float64
	pos    int
	count  int
	sum    float64
	sumSq  float64
}

// NewStats creates a streaming accumulator over the given window size.
// Returns ErrInvalidWindow when window < 1.
func NewStats(window int) (*Stats, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	return &Stats{
		window: window,
		values: make([]float64, window),
	}, nil
}

// Push adds a sample, evicting the oldest one once the window is full.
func (s *Stats) Push(v float64) {
	if s.count == s.window {
		old := s.values[s.pos]
		s.sum -= old
		s.sumSq -= old * old
	} else {
		s.count++
	}

	s.values[s.pos] = v
	s.sum += v
	s.sumSq += v * v
	s.pos = (s.pos + 1) % s.window
}

// Count returns the number of samples currently in the window.
func (s *Stats) Count() int {
	return s.count
}

// Mean returns the mean of the samples in the window, 0 when empty.
func (s *Stats) Mean() float64 {
	if s.count == 0 {
		return 0
	}

	return s.sum / float64(s.count)
}

// Variance returns the population variance of the samples in the
// window, 0 when empty.
func (s *Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}

	mean := s.sum / float64(s.count)

	variance := s.sumSq/float64(s.count) - mean*mean
	if variance < 0 {
		// Cancellation in sumSq - n*mean^2 can go slightly negative.
		variance = 0
	}

	return variance
}

// StdDev returns the population standard deviation of the samples in
// the window, 0 when empty.
func (s *Stats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Reset clears all accumulated samples, keeping the window size.
func (s *Stats) Reset() {
	s.pos = 0
	s.count = 0
	s.sum = 0
	s.sumSq = 0
}
