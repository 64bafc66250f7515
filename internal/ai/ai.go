// Package ai drives enemy-controlled turns. It is deliberately outside the
// engine: enemies act through the same SubmitAction surface a human-driven
// client uses, one validated action at a time.
package ai

import (
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

// Behavior tags declared by enemy content.
const (
	BehaviorAggressive = "aggressive"
	BehaviorDefensive  = "defensive"
	BehaviorSkittish   = "skittish"
)

// ChooseAction picks the next action for the active enemy combatant from
// the session's public state. It is deterministic: the same state always
// yields the same action, so session replays stay byte-identical.
func ChooseAction(st *game.CombatSession, actor *game.CombatantState, weapons map[string]game.WeaponDefinition) game.CombatAction {
	target := nearestLivingPlayer(st, actor)
	if target == nil {
		return endTurn(actor)
	}

	w, armed := weapons[actor.WeaponID]
	weaponRange := constants.UnarmedRange
	attackCost := constants.APCostAttack
	if armed {
		weaponRange = w.Range
		if w.APCost > 0 {
			attackCost = w.APCost
		}
	}

	hurt := actor.Health*100 < actor.MaxHealth*30

	// Wounded defensive enemies dig in once per turn.
	if actor.Behavior == BehaviorDefensive && hurt && !actor.HasStatus(game.StatusDefending) && actor.ActionPoints >= constants.APCostDefend {
		return game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionDefend}
	}

	// Wounded skittish enemies back away instead of trading hits.
	if actor.Behavior == BehaviorSkittish && hurt && actor.ActionPoints >= constants.APCostPerHex {
		if dest, ok := stepAway(st, actor, target); ok {
			return game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionMove, TargetPos: &dest}
		}
	}

	// Dry magazine: reload before anything else.
	if armed && w.MagazineCapacity > 0 && actor.AmmoInMagazine <= 0 {
		if actor.ActionPoints >= constants.APCostReload {
			return game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionReload}
		}
		return endTurn(actor)
	}

	dist := engine.Distance(actor.Pos(), target.Pos())
	if dist <= weaponRange && actor.ActionPoints >= attackCost {
		return game.CombatAction{
			ActorID:  actor.CombatantID,
			Type:     game.ActionAttack,
			TargetID: target.CombatantID,
		}
	}

	// Close the gap one hex at a time.
	if dist > weaponRange && actor.ActionPoints >= constants.APCostPerHex {
		if dest, ok := stepCloser(st, actor, target); ok {
			return game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionMove, TargetPos: &dest}
		}
	}

	return endTurn(actor)
}

func endTurn(actor *game.CombatantState) game.CombatAction {
	return game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionEndTurn}
}

func nearestLivingPlayer(st *game.CombatSession, actor *game.CombatantState) *game.CombatantState {
	var best *game.CombatantState
	bestDist := 0
	for i := range st.Combatants {
		c := &st.Combatants[i]
		if !c.IsPlayerControlled || c.IsDead {
			continue
		}
		d := engine.Distance(actor.Pos(), c.Pos())
		if best == nil || d < bestDist || (d == bestDist && c.CombatantID < best.CombatantID) {
			best = c
			bestDist = d
		}
	}
	return best
}

func stepCloser(st *game.CombatSession, actor, target *game.CombatantState) (game.GridPos, bool) {
	dest := engine.StepToward(actor.Pos(), target.Pos())
	if dest == actor.Pos() || occupied(st, dest) {
		return game.GridPos{}, false
	}
	return dest, true
}

// stepAway mirrors StepToward: move to the free neighbor that maximizes
// distance to the threat.
func stepAway(st *game.CombatSession, actor, threat *game.CombatantState) (game.GridPos, bool) {
	from := actor.Pos()
	best := from
	bestDist := engine.Distance(from, threat.Pos())
	for _, n := range engine.HexNeighbors() {
		cand := game.GridPos{Q: from.Q + n.Q, R: from.R + n.R}
		if occupied(st, cand) {
			continue
		}
		if d := engine.Distance(cand, threat.Pos()); d > bestDist {
			best = cand
			bestDist = d
		}
	}
	if best == from {
		return game.GridPos{}, false
	}
	return best, true
}

func occupied(st *game.CombatSession, pos game.GridPos) bool {
	for i := range st.Combatants {
		c := &st.Combatants[i]
		if !c.IsDead && c.Pos() == pos {
			return true
		}
	}
	return false
}
