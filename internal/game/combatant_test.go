package game

import "testing"

func TestApplyDamage(t *testing.T) {
	c := &CombatantState{Health: 10, MaxHealth: 10}
	if got := c.ApplyDamage(4); got != 4 || c.Health != 6 {
		t.Fatalf("expected 4 applied, got %d (health %d)", got, c.Health)
	}
	// Overkill clamps at zero and marks death.
	if got := c.ApplyDamage(100); got != 6 || c.Health != 0 || !c.IsDead {
		t.Fatalf("expected clamp to 6, got %d (health %d dead %v)", got, c.Health, c.IsDead)
	}
	// Damage to a dead combatant is a no-op.
	if got := c.ApplyDamage(5); got != 0 || c.Health != 0 {
		t.Fatalf("expected no-op on dead combatant, got %d", got)
	}
}

func TestHeal(t *testing.T) {
	c := &CombatantState{Health: 6, MaxHealth: 10}
	if got := c.Heal(10); got != 4 || c.Health != 10 {
		t.Fatalf("expected cap at max, got %d (health %d)", got, c.Health)
	}
	dead := &CombatantState{Health: 0, MaxHealth: 10, IsDead: true}
	if got := dead.Heal(5); got != 0 || dead.Health != 0 {
		t.Fatalf("healing the dead must be rejected, got %d", got)
	}
}

func TestSpendActionPoints(t *testing.T) {
	c := &CombatantState{ActionPoints: 3, MaxActionPoints: 6}
	if !c.SpendActionPoints(3) || c.ActionPoints != 0 {
		t.Fatalf("expected spend to succeed, left %d", c.ActionPoints)
	}
	if c.SpendActionPoints(1) {
		t.Fatalf("overspend must fail")
	}
	if c.ActionPoints != 0 {
		t.Fatalf("failed spend must not mutate, left %d", c.ActionPoints)
	}
}

func TestResetForNewTurn(t *testing.T) {
	c := &CombatantState{
		ActionPoints: 0, MaxActionPoints: 6, HasActedThisTurn: true,
		StatusEffects: []StatusEffect{
			{Kind: StatusDefending, TurnsRemaining: 1, Magnitude: 50},
			{Kind: StatusPoisoned, TurnsRemaining: 2, Magnitude: 1},
		},
	}
	c.ResetForNewTurn()
	if c.ActionPoints != 6 || c.HasActedThisTurn {
		t.Fatalf("expected fresh turn state, got %+v", c)
	}
	if c.HasStatus(StatusDefending) {
		t.Fatalf("defend stance must clear")
	}
	if !c.HasStatus(StatusPoisoned) {
		t.Fatalf("other effects must persist")
	}
}

func TestPhaseTerminal(t *testing.T) {
	for _, p := range []Phase{PhaseVictory, PhaseDefeat, PhaseFled} {
		if !p.Terminal() {
			t.Fatalf("%v should be terminal", p)
		}
	}
	for _, p := range []Phase{PhaseStarting, PhasePlayerTurn, PhaseEnemyTurn} {
		if p.Terminal() {
			t.Fatalf("%v should not be terminal", p)
		}
	}
}
