package engine

import (
	"fmt"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

// execAttack resolves a standard or aimed attack. Validation has already
// passed, so the target exists, is alive, is in range and ammo is loaded.
func (s *Session) execAttack(actor *game.CombatantState, a game.CombatAction, aimed bool) game.CombatLogEntry {
	st := s.State
	target := st.Combatant(a.TargetID)
	w := s.weaponOf(actor)
	if w.MagazineCapacity > 0 {
		actor.AmmoInMagazine--
	}

	dist := Distance(actor.Pos(), target.Pos())
	chance := ResolveHitChance(actor.Accuracy, target.Evasion, dist, aimed)
	hit := RollHit(s.dice, chance)

	action := game.ActionAttack
	verb := "attacks"
	if aimed {
		action = game.ActionAimedShot
		verb = "takes an aimed shot at"
	}
	entry := game.CombatLogEntry{
		Round:    st.Round,
		ActorID:  actor.CombatantID,
		TargetID: target.CombatantID,
		Action:   action,
	}

	if !hit {
		entry.Dodged = true
		entry.TargetHealth = target.Health
		entry.Message = fmt.Sprintf("%s %s %s and misses (%d%% to hit)", actor.DisplayName, verb, target.DisplayName, chance)
		return entry
	}

	crit := RollCritical(s.dice)
	dmg := ResolveDamage(w.Damage, actor.Level, target.Armor, crit)
	if def := target.StatusFor(game.StatusDefending); def != nil {
		dmg -= dmg * def.Magnitude / 100
		if dmg < constants.MinDamage {
			dmg = constants.MinDamage
		}
	}
	dealt := target.ApplyDamage(dmg)

	if w.StatusKind != game.StatusNone && !target.IsDead {
		applyRolled := w.StatusChance == 0 || s.dice.Percent() <= w.StatusChance
		if applyRolled && ApplyStatus(target, w.StatusKind, w.StatusTurns, w.StatusMagnitude) {
			entry.StatusApplied = w.StatusKind
		}
	}

	entry.Success = true
	entry.Damage = dealt
	entry.Critical = crit
	entry.TargetHealth = target.Health
	msg := fmt.Sprintf("%s %s %s with %s for %d damage", actor.DisplayName, verb, target.DisplayName, w.Name, dealt)
	if crit {
		msg += " (critical)"
	}
	if entry.StatusApplied != game.StatusNone {
		msg += fmt.Sprintf("; %s is %s", target.DisplayName, entry.StatusApplied)
	}
	if target.IsDead {
		msg += fmt.Sprintf("; %s goes down", target.DisplayName)
	}
	entry.Message = msg
	return entry
}

// execMove relocates the actor. The destination was validated unoccupied
// and the per-hex cost already spent.
func (s *Session) execMove(actor *game.CombatantState, a game.CombatAction, cost int) game.CombatLogEntry {
	actor.PosQ = a.TargetPos.Q
	actor.PosR = a.TargetPos.R
	return game.CombatLogEntry{
		Round:        s.State.Round,
		ActorID:      actor.CombatantID,
		Action:       game.ActionMove,
		Success:      true,
		TargetHealth: actor.Health,
		Message:      fmt.Sprintf("%s moves to (%d,%d) for %d AP", actor.DisplayName, a.TargetPos.Q, a.TargetPos.R, cost),
	}
}

// execReload tops the magazine back up to capacity.
func (s *Session) execReload(actor *game.CombatantState) game.CombatLogEntry {
	w := s.weaponOf(actor)
	actor.AmmoInMagazine = w.MagazineCapacity
	return game.CombatLogEntry{
		Round:        s.State.Round,
		ActorID:      actor.CombatantID,
		Action:       game.ActionReload,
		Success:      true,
		TargetHealth: actor.Health,
		Message:      fmt.Sprintf("%s reloads %s (%d rounds)", actor.DisplayName, w.Name, w.MagazineCapacity),
	}
}

// execUseItem applies an item's declared effect to the actor or a living
// ally. The effect payload is opaque content: heal, cure, or attach a
// status.
func (s *Session) execUseItem(actor *game.CombatantState, a game.CombatAction) game.CombatLogEntry {
	item := s.items[a.PayloadID]
	target := actor
	if a.TargetID != "" {
		target = s.State.Combatant(a.TargetID)
	}

	parts := ""
	healed := 0
	if item.HealAmount > 0 {
		healed = target.Heal(item.HealAmount)
		parts = fmt.Sprintf("restores %d health", healed)
	}
	if item.CureKind != game.StatusNone && target.HasStatus(item.CureKind) {
		target.RemoveStatus(item.CureKind)
		if parts != "" {
			parts += " and "
		}
		parts += fmt.Sprintf("cures %s", item.CureKind)
	}
	applied := game.StatusNone
	if item.ApplyKind != game.StatusNone && ApplyStatus(target, item.ApplyKind, item.ApplyTurns, item.ApplyMag) {
		applied = item.ApplyKind
		if parts != "" {
			parts += " and "
		}
		parts += fmt.Sprintf("applies %s", item.ApplyKind)
	}
	if parts == "" {
		parts = "has no effect"
	}

	return game.CombatLogEntry{
		Round:         s.State.Round,
		ActorID:       actor.CombatantID,
		TargetID:      target.CombatantID,
		Action:        game.ActionUseItem,
		Success:       true,
		Damage:        -healed,
		StatusApplied: applied,
		TargetHealth:  target.Health,
		Message:       fmt.Sprintf("%s uses %s on %s: %s", actor.DisplayName, item.Name, target.DisplayName, parts),
	}
}

// execDefend raises the defend stance: incoming damage is reduced until
// the start of the actor's next turn.
func (s *Session) execDefend(actor *game.CombatantState) game.CombatLogEntry {
	ApplyStatus(actor, game.StatusDefending, constants.DefendDurationTurns, constants.DefendReductionPercent)
	return game.CombatLogEntry{
		Round:         s.State.Round,
		ActorID:       actor.CombatantID,
		Action:        game.ActionDefend,
		Success:       true,
		StatusApplied: game.StatusDefending,
		TargetHealth:  actor.Health,
		Message:       fmt.Sprintf("%s braces for incoming fire (-%d%% damage)", actor.DisplayName, constants.DefendReductionPercent),
	}
}

// execFlee rolls the escape chance. Success ends the session in the fled
// phase; failure just burns the action points.
func (s *Session) execFlee(actor *game.CombatantState) game.CombatLogEntry {
	chance := FleeChance(actor.Level)
	ok := s.dice.Percent() <= chance
	entry := game.CombatLogEntry{
		Round:        s.State.Round,
		ActorID:      actor.CombatantID,
		Action:       game.ActionFlee,
		Success:      ok,
		TargetHealth: actor.Health,
	}
	if ok {
		s.State.Phase = game.PhaseFled
		s.State.Message = "The party slips away from the fight."
		entry.Message = fmt.Sprintf("%s breaks away; the party escapes (%d%% chance)", actor.DisplayName, chance)
	} else {
		entry.Message = fmt.Sprintf("%s tries to flee but is cut off (%d%% chance)", actor.DisplayName, chance)
	}
	return entry
}
