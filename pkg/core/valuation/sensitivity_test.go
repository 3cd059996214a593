package valuation

import "testing"

func TestDefaultGrid(t *testing.T) {
	got := DefaultGrid(10)
	want := []float64{8, 9, 10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}
