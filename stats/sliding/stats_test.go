package sliding

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-datautils/internal/testutil"
)

func TestNewStatsInvalidWindow(t *testing.T) {
	for _, w := range []int{0, -1} {
		if _, err := NewStats(w); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("NewStats(%d) err = %v, want ErrInvalidWindow", w, err)
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	s, err := NewStats(4)
	if err != nil {
		t.Fatalf("NewStats: %v", err)
	}
	if s.Count() != 0 || s.Mean() != 0 || s.Variance() != 0 || s.StdDev() != 0 {
		t.Errorf("empty Stats: count=%d mean=%v var=%v std=%v",
			s.Count(), s.Mean(), s.Variance(), s.StdDev())
	}
}

func TestStatsPartialFill(t *testing.T) {
	s, _ := NewStats(4)
	s.Push(1)
	s.Push(2)

	if s.Count() != 2 {
		t.Errorf("Count = %d, want 2", s.Count())
	}
	testutil.RequireNearlyEqual(t, s.Mean(), 1.5, tolerance)
	testutil.RequireNearlyEqual(t, s.Variance(), 0.25, tolerance)
}

func TestStatsEviction(t *testing.T) {
	s, _ := NewStats(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Push(v)
	}

	// Window now holds 3, 4, 5.
	if s.Count() != 3 {
		t.Errorf("Count = %d, want 3", s.Count())
	}
	testutil.RequireNearlyEqual(t, s.Mean(), 4, tolerance)
	testutil.RequireNearlyEqual(t, s.Variance(), 2.0/3.0, 1e-9)
}

// After every push the accumulator must agree with statistics computed
// directly over the samples currently in the window.
func TestStatsMatchesDirect(t *testing.T) {
	const window = 16
	s, _ := NewStats(window)
	samples := testutil.DeterministicNoise(99, 50, 500)

	for i, v := range samples {
		s.Push(v)

		lo := i + 1 - window
		if lo < 0 {
			lo = 0
		}
		current := samples[lo : i+1]

		var sum float64
		for _, x := range current {
			sum += x
		}
		mean := sum / float64(len(current))

		var sq float64
		for _, x := range current {
			sq += (x - mean) * (x - mean)
		}
		variance := sq / float64(len(current))

		testutil.RequireNearlyEqual(t, s.Mean(), mean, 1e-9)
		testutil.RequireNearlyEqual(t, s.Variance(), variance, 1e-7)
	}
}

func TestStatsReset(t *testing.T) {
	s, _ := NewStats(3)
	s.Push(1)
	s.Push(2)
	s.Reset()

	if s.Count() != 0 || s.Mean() != 0 {
		t.Errorf("after Reset: count=%d mean=%v", s.Count(), s.Mean())
	}

	s.Push(10)
	testutil.RequireNearlyEqual(t, s.Mean(), 10, tolerance)
}
