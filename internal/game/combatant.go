package game

// ApplyDamage subtracts amount from health, clamping at 0 and marking the
// combatant dead when health reaches 0. Damage applied to an already-dead
// combatant is a no-op. Returns the damage actually applied.
func (c *CombatantState) ApplyDamage(amount int) int {
	if c.IsDead || amount <= 0 {
		return 0
	}
	applied := amount
	if applied > c.Health {
		applied = c.Health
	}
	c.Health -= applied
	if c.Health == 0 {
		c.IsDead = true
	}
	return applied
}

// Heal restores health up to the maximum. Healing a dead combatant is an
// external revival concern and is rejected here. Returns the amount
// actually restored.
func (c *CombatantState) Heal(amount int) int {
	if c.IsDead || amount <= 0 {
		return 0
	}
	restored := amount
	if c.Health+restored > c.MaxHealth {
		restored = c.MaxHealth - c.Health
	}
	c.Health += restored
	return restored
}

// SpendActionPoints decrements the actor's points. Returns false without
// mutating when the cost exceeds the remaining points.
func (c *CombatantState) SpendActionPoints(cost int) bool {
	if cost < 0 || cost > c.ActionPoints {
		return false
	}
	c.ActionPoints -= cost
	return true
}

// ResetForNewTurn restores action points to max, clears the acted flag and
// drops the defend stance from the previous round.
func (c *CombatantState) ResetForNewTurn() {
	c.ActionPoints = c.MaxActionPoints
	c.HasActedThisTurn = false
	c.RemoveStatus(StatusDefending)
}

// StatusFor returns the active effect of the given kind, or nil.
func (c *CombatantState) StatusFor(kind StatusKind) *StatusEffect {
	for i := range c.StatusEffects {
		if c.StatusEffects[i].Kind == kind && c.StatusEffects[i].TurnsRemaining > 0 {
			return &c.StatusEffects[i]
		}
	}
	return nil
}

// HasStatus reports whether an effect of the given kind is active.
func (c *CombatantState) HasStatus(kind StatusKind) bool {
	return c.StatusFor(kind) != nil
}

// IsStunned reports whether the combatant must be skipped by the scheduler.
func (c *CombatantState) IsStunned() bool {
	return c.HasStatus(StatusStunned)
}

// RemoveStatus removes every effect of the given kind.
func (c *CombatantState) RemoveStatus(kind StatusKind) {
	kept := c.StatusEffects[:0]
	for _, e := range c.StatusEffects {
		if e.Kind != kind {
			kept = append(kept, e)
		}
	}
	c.StatusEffects = kept
}

// Pos returns the combatant's grid position.
func (c *CombatantState) Pos() GridPos {
	return GridPos{Q: c.PosQ, R: c.PosR}
}
