package interview

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	rng "github.com/leesper/go_rng"
)

func TestMinCoveringWindow(t *testing.T) {
	tests := []struct {
		positions []int64
		k         int
		want      int64
	}{
		{positions: []int64{1, 2, 3, 4, 7}, k: 2, want: 2},
		{positions: []int64{1, 2, 3, 10}, k: 4, want: 10},
		{positions: []int64{6, 2, 12, 7}, k: 3, want: 6},
		{positions: []int64{2, 10, 8, 17}, k: 3, want: 9},
		{positions: []int64{5}, k: 1, want: 1},
		{positions: []int64{4, 4, 4, 9}, k: 3, want: 1},
		{positions: []int64{-5, -1, 3, 100}, k: 2, want: 5},
		{positions: []int64{math.MinInt64, 0, 1}, k: 2, want: 2},
		{positions: []int64{math.MaxInt64, math.MinInt64, math.MaxInt64 - 3}, k: 2, want: 4},
		{positions: []int64{0, math.MaxInt64 - 1}, k: 2, want: math.MaxInt64},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%v k=%d", tt.positions, tt.k)

		t.Run(name, func(t *testing.T) {
			got, err := MinCoveringWindow(tt.positions, tt.k)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCoveringWindowLeftmost(t *testing.T) {
	w, err := CoveringWindow([]int64{7, 4, 1, 3, 2}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Window{Start: 1, End: 2}, w); diff != "" {
		t.Errorf("CoveringWindow() mismatch (-want +got):\n%s", diff)
	}
	if w.Len() != 2 {
		t.Errorf("Expected Len() == 2, got %d", w.Len())
	}
}

func TestCoveringWindowWholeSet(t *testing.T) {
	gen := rng.NewUniformGenerator(0xDEADBEEF)

	for n := 1; n < 50; n++ {
		positions := make([]int64, n)
		for i := range positions {
			positions[i] = gen.Int64n(10000) - 5000
		}

		got, err := MinCoveringWindow(positions, n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := slices.Max(positions) - slices.Min(positions) + 1
		if got != want {
			t.Errorf("n=%d: covering every position should give max-min+1 = %d, got %d", n, want, got)
		}
	}
}

func TestCoveringWindowOrderIndependent(t *testing.T) {
	gen := rng.NewUniformGenerator(7)

	for round := 0; round < 100; round++ {
		n := int(gen.Int64n(30)) + 1
		k := int(gen.Int64n(int64(n))) + 1

		positions := make([]int64, n)
		for i := range positions {
			positions[i] = gen.Int64n(200)
		}
		original := slices.Clone(positions)

		unsorted, err := MinCoveringWindow(positions, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(original, positions); diff != "" {
			t.Fatalf("MinCoveringWindow() modified its input (-want +got):\n%s", diff)
		}

		sorted := slices.Clone(positions)
		slices.Sort(sorted)
		presorted, err := MinCoveringWindow(sorted, k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if unsorted != presorted {
			t.Errorf("positions=%v k=%d: unsorted gave %d, sorted gave %d", positions, k, unsorted, presorted)
		}
	}
}

func TestCoveringWindowInvalid(t *testing.T) {
	tests := []struct {
		name      string
		positions []int64
		k         int
	}{
		{name: "k zero", positions: []int64{1, 2}, k: 0},
		{name: "k negative", positions: []int64{1, 2}, k: -1},
		{name: "k too large", positions: []int64{1, 2}, k: 3},
		{name: "empty", positions: nil, k: 1},
		{name: "overflow", positions: []int64{math.MinInt64, math.MaxInt64}, k: 2},
		{name: "overflow by one", positions: []int64{-1, math.MaxInt64 - 1}, k: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MinCoveringWindow(tt.positions, tt.k)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
