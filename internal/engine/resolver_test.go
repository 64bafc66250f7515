package engine

import "testing"

func TestResolveHitChance(t *testing.T) {
	// 70 accuracy against an evasion-0 defender at optimal range.
	if got := ResolveHitChance(70, 0, 3, false); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
	// 70 accuracy vs 10 evasion inside optimal range.
	if got := ResolveHitChance(70, 10, 1, false); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
	// Aimed shot adds its bonus.
	if got := ResolveHitChance(70, 10, 1, true); got != 85 {
		t.Fatalf("expected 85, got %d", got)
	}
	// Two hexes past optimal range costs 10.
	if got := ResolveHitChance(70, 10, 5, false); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestResolveHitChance_Clamps(t *testing.T) {
	if got := ResolveHitChance(10, 90, 10, false); got != 5 {
		t.Fatalf("expected floor of 5, got %d", got)
	}
	if got := ResolveHitChance(100, 0, 1, true); got != 95 {
		t.Fatalf("expected ceiling of 95, got %d", got)
	}
}

func TestResolveDamage(t *testing.T) {
	if got := ResolveDamage(5, 2, 0, false); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := ResolveDamage(5, 2, 0, true); got != 12 {
		t.Fatalf("expected critical 12, got %d", got)
	}
	if got := ResolveDamage(5, 2, 3, false); got != 3 {
		t.Fatalf("expected 3 after armor, got %d", got)
	}
}

func TestResolveDamage_ArmorNeverNegates(t *testing.T) {
	if got := ResolveDamage(2, 0, 10, false); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestFleeChance(t *testing.T) {
	if got := FleeChance(0); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := FleeChance(5); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	if got := FleeChance(20); got != 95 {
		t.Fatalf("expected clamp to 95, got %d", got)
	}
}

func TestRollHit_Bounds(t *testing.T) {
	d := NewDice(3, 0)
	for i := 0; i < 100; i++ {
		if !RollHit(d, 100) {
			t.Fatalf("a 100%% chance must always hit")
		}
	}
	for i := 0; i < 100; i++ {
		if RollHit(d, 0) {
			t.Fatalf("a 0%% chance must never hit")
		}
	}
}

func TestRollCritical_ConsumesOneDraw(t *testing.T) {
	d := NewDice(11, 0)
	before := d.Draws()
	RollCritical(d)
	if d.Draws() != before+1 {
		t.Fatalf("expected exactly one draw, got %d", d.Draws()-before)
	}
}
