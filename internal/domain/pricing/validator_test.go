package pricing

import (
	"errors"
	"testing"
)

func TestTierTableMinimumRate(t *testing.T) {
	table := DefaultTierTable()

	cases := []struct {
		weight float64
		want   float64
	}{
		{weight: 0.5, want: 36.00},
		{weight: 9.99, want: 36.00},
		{weight: 10.01, want: 26.00},
		{weight: 99.99, want: 26.00},
		{weight: 100.01, want: 12.60},
		{weight: 266.175, want: 12.60},
	}
	for _, tc := range cases {
		if got := table.MinimumRate(tc.weight); got != tc.want {
			t.Fatalf("weight %v: expected %v, got %v", tc.weight, tc.want, got)
		}
	}

	// Floors never increase as weight grows across tier boundaries.
	prev := table.MinimumRate(0.01)
	for _, w := range []float64{5, 10, 50, 100, 500, 10000} {
		cur := table.MinimumRate(w)
		if cur > prev {
			t.Fatalf("minimum rate increased at weight %v: %v > %v", w, cur, prev)
		}
		prev = cur
	}
}

func TestFloorValidator(t *testing.T) {
	v := NewFloorValidator(DefaultTierTable())

	t.Run("at floor passes", func(t *testing.T) {
		if err := v.Validate(266.175, 12.60, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("below floor fails with minimum", func(t *testing.T) {
		err := v.Validate(5, 30.00, false)
		var floorErr *PriceBelowFloorError
		if !errors.As(err, &floorErr) {
			t.Fatalf("expected PriceBelowFloorError, got %v", err)
		}
		if floorErr.MinimumRate != 36.00 {
			t.Fatalf("expected minimum 36.00, got %v", floorErr.MinimumRate)
		}
	})

	t.Run("override bypasses floor", func(t *testing.T) {
		if err := v.Validate(5, 30.00, true); err != nil {
			t.Fatalf("expected override to pass, got %v", err)
		}
	})
}
