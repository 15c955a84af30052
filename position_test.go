package flowview

import "testing"

func TestActualPosition(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		sibling int
		count   int
		want    int
	}{
		{"initial center", 0, 1, 5, 1},
		{"initial left edge", -1, 1, 5, 0},
		{"initial right edge", 1, 1, 5, 2},
		{"wraps forward", 4, 1, 5, 0},
		{"wraps backward", -3, 2, 5, 4},
		{"wraps multiple times forward", 13, 1, 5, 4},
		{"wraps multiple times backward", -22, 1, 5, 4},
		{"exact count boundary", 4, 1, 5, 0},
		{"no adapter passes through", 7, 2, 0, 9},
		{"no adapter negative", -4, 1, -1, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actualPosition(tt.index, tt.sibling, tt.count); got != tt.want {
				t.Errorf("actualPosition(%d, %d, %d) = %d, want %d", tt.index, tt.sibling, tt.count, got, tt.want)
			}
		})
	}
}

func TestActualPositionStaysInRange(t *testing.T) {
	for index := -50; index <= 50; index++ {
		got := actualPosition(index, 2, 7)
		if got < 0 || got >= 7 {
			t.Fatalf("actualPosition(%d, 2, 7) = %d, outside [0, 7)", index, got)
		}
		// Adjacent indices map to adjacent positions around the ring.
		next := actualPosition(index+1, 2, 7)
		if next != (got+1)%7 {
			t.Fatalf("positions not contiguous at index %d: %d then %d", index, got, next)
		}
	}
}
