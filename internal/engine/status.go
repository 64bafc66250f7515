package engine

import (
	"fmt"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

// ApplyStatus attaches an effect to a combatant. An effect of a kind
// already present is replaced only when the new duration is strictly
// longer; the magnitude of the newer application wins on replacement.
// Returns whether the effect was applied or refreshed.
func ApplyStatus(c *game.CombatantState, kind game.StatusKind, turns, magnitude int) bool {
	if kind == game.StatusNone || turns < 1 {
		return false
	}
	if cur := c.StatusFor(kind); cur != nil {
		if turns > cur.TurnsRemaining {
			cur.TurnsRemaining = turns
			cur.Magnitude = magnitude
			return true
		}
		return false
	}
	c.StatusEffects = append(c.StatusEffects, game.StatusEffect{
		Kind:           kind,
		TurnsRemaining: turns,
		Magnitude:      magnitude,
	})
	return true
}

// tickCombatantStatuses runs the once-per-round tick for one living
// combatant. Damage-dealing kinds produce a log-entry-shaped result before
// the duration is decremented; expiry itself is silent.
func tickCombatantStatuses(c *game.CombatantState, round int) []game.CombatLogEntry {
	var out []game.CombatLogEntry
	kept := c.StatusEffects[:0]
	for _, e := range c.StatusEffects {
		if e.Kind.DealsDamage() && !c.IsDead {
			dealt := c.ApplyDamage(e.Magnitude)
			msg := fmt.Sprintf("%s takes %d %s damage", c.DisplayName, dealt, e.Kind)
			if c.IsDead {
				msg += fmt.Sprintf("; %s collapses", c.DisplayName)
			}
			out = append(out, game.CombatLogEntry{
				Round:         round,
				ActorID:       c.CombatantID,
				TargetID:      c.CombatantID,
				Action:        game.ActionStatusTick,
				Success:       true,
				Damage:        dealt,
				StatusApplied: e.Kind,
				TargetHealth:  c.Health,
				Message:       msg,
			})
		}
		// The defend stance expires when the actor's next turn starts
		// (ResetForNewTurn), not at the round boundary.
		if e.Kind != game.StatusDefending {
			e.TurnsRemaining--
		}
		if e.TurnsRemaining > 0 {
			kept = append(kept, e)
		}
	}
	c.StatusEffects = kept
	return out
}
