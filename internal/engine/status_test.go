package engine

import (
	"strings"
	"testing"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

func TestApplyStatus_New(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Sal", Health: 10, MaxHealth: 10}
	if !ApplyStatus(c, game.StatusPoisoned, 3, 2) {
		t.Fatalf("expected status to apply")
	}
	e := c.StatusFor(game.StatusPoisoned)
	if e == nil || e.TurnsRemaining != 3 || e.Magnitude != 2 {
		t.Fatalf("unexpected effect: %+v", e)
	}
}

func TestApplyStatus_ReplaceOnlyWhenLonger(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Sal", Health: 10, MaxHealth: 10}
	ApplyStatus(c, game.StatusBleeding, 3, 2)

	// Shorter re-application is ignored, magnitude included.
	if ApplyStatus(c, game.StatusBleeding, 2, 9) {
		t.Fatalf("shorter duration must not replace")
	}
	e := c.StatusFor(game.StatusBleeding)
	if e.TurnsRemaining != 3 || e.Magnitude != 2 {
		t.Fatalf("effect should be untouched, got %+v", e)
	}

	// Strictly longer replaces, and the newer magnitude wins.
	if !ApplyStatus(c, game.StatusBleeding, 5, 4) {
		t.Fatalf("longer duration must replace")
	}
	e = c.StatusFor(game.StatusBleeding)
	if e.TurnsRemaining != 5 || e.Magnitude != 4 {
		t.Fatalf("effect should be refreshed, got %+v", e)
	}
	if len(c.StatusEffects) != 1 {
		t.Fatalf("expected a single effect, got %d", len(c.StatusEffects))
	}
}

func TestApplyStatus_RejectsInvalid(t *testing.T) {
	c := &game.CombatantState{Health: 10, MaxHealth: 10}
	if ApplyStatus(c, game.StatusNone, 3, 1) {
		t.Fatalf("empty kind must not apply")
	}
	if ApplyStatus(c, game.StatusStunned, 0, 1) {
		t.Fatalf("zero duration must not apply")
	}
}

func TestTickStatuses_DamageAndExpiry(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Sal", Health: 10, MaxHealth: 10}
	ApplyStatus(c, game.StatusBurning, 2, 3)

	entries := tickCombatantStatuses(c, 2)
	if len(entries) != 1 {
		t.Fatalf("expected one tick entry, got %d", len(entries))
	}
	if entries[0].Action != game.ActionStatusTick || entries[0].Damage != 3 || entries[0].TargetHealth != 7 {
		t.Fatalf("unexpected tick entry: %+v", entries[0])
	}
	if e := c.StatusFor(game.StatusBurning); e == nil || e.TurnsRemaining != 1 {
		t.Fatalf("expected one turn remaining, got %+v", e)
	}

	// Last tick still damages, then the effect expires silently.
	entries = tickCombatantStatuses(c, 3)
	if len(entries) != 1 || entries[0].TargetHealth != 4 {
		t.Fatalf("unexpected second tick: %+v", entries)
	}
	if c.HasStatus(game.StatusBurning) {
		t.Fatalf("expected effect to expire")
	}
}

func TestTickStatuses_NonDamagingExpireSilently(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Sal", Health: 10, MaxHealth: 10}
	ApplyStatus(c, game.StatusStunned, 1, 0)
	entries := tickCombatantStatuses(c, 2)
	if len(entries) != 0 {
		t.Fatalf("expected no entries for a non-damaging effect, got %d", len(entries))
	}
	if c.IsStunned() {
		t.Fatalf("expected stun to expire")
	}
}

func TestTickStatuses_DefendStanceOutlivesRoundWrap(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Sal", Health: 10, MaxHealth: 10}
	ApplyStatus(c, game.StatusDefending, 1, 50)
	if entries := tickCombatantStatuses(c, 2); len(entries) != 0 {
		t.Fatalf("defend stance must not tick, got %+v", entries)
	}
	if !c.HasStatus(game.StatusDefending) {
		t.Fatalf("round tick must not expire the defend stance")
	}
	// Only the start of the defender's own turn drops it.
	c.ResetForNewTurn()
	if c.HasStatus(game.StatusDefending) {
		t.Fatalf("expected stance cleared on the defender's turn start")
	}
}

func TestTickStatuses_DoTCanKill(t *testing.T) {
	c := &game.CombatantState{DisplayName: "Coyote", Health: 2, MaxHealth: 14}
	ApplyStatus(c, game.StatusBleeding, 2, 5)
	entries := tickCombatantStatuses(c, 2)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	// Damage clamps to remaining health and the carrier dies.
	if entries[0].Damage != 2 || entries[0].TargetHealth != 0 {
		t.Fatalf("unexpected lethal tick: %+v", entries[0])
	}
	if !c.IsDead {
		t.Fatalf("expected carrier to die")
	}
	if !strings.Contains(entries[0].Message, "collapses") {
		t.Fatalf("expected death notice in message, got %q", entries[0].Message)
	}
}
