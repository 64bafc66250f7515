package engine

import (
	"testing"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b game.GridPos
		want int
	}{
		{game.GridPos{}, game.GridPos{}, 0},
		{game.GridPos{}, game.GridPos{Q: 3, R: 0}, 3},
		{game.GridPos{}, game.GridPos{Q: 2, R: -1}, 2},
		{game.GridPos{}, game.GridPos{Q: -1, R: 1}, 1},
		{game.GridPos{Q: 1, R: -2}, game.GridPos{Q: -1, R: 1}, 3},
		{game.GridPos{}, game.GridPos{Q: 0, R: -10}, 10},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Fatalf("Distance(%v,%v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); got != c.want {
			t.Fatalf("Distance(%v,%v) = %d, want %d (not symmetric)", c.b, c.a, got, c.want)
		}
	}
}

func TestStepToward(t *testing.T) {
	from := game.GridPos{Q: 0, R: 0}
	to := game.GridPos{Q: 3, R: 0}
	step := StepToward(from, to)
	if Distance(step, to) != 2 {
		t.Fatalf("expected step to reduce distance to 2, got %v (dist %d)", step, Distance(step, to))
	}
	// Stepping toward the current position is a no-op.
	if got := StepToward(from, from); got != from {
		t.Fatalf("expected no step, got %v", got)
	}
}

func TestStepToward_Deterministic(t *testing.T) {
	from := game.GridPos{Q: 0, R: 0}
	to := game.GridPos{Q: 4, R: -2}
	first := StepToward(from, to)
	for i := 0; i < 10; i++ {
		if got := StepToward(from, to); got != first {
			t.Fatalf("step not deterministic: %v vs %v", got, first)
		}
	}
}
