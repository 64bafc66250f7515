package ai

import (
	"testing"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

var testWeapons = map[string]game.WeaponDefinition{
	"revolver": {WeaponID: "revolver", Name: "revolver", Damage: 5, Range: 4, MagazineCapacity: 6},
}

func enemy(id, behavior string, q, r int) game.CombatantState {
	return game.CombatantState{
		CombatantID: id, DisplayName: id, Behavior: behavior,
		Health: 20, MaxHealth: 20, ActionPoints: 5, MaxActionPoints: 5,
		Level: 1, Accuracy: 55, PosQ: q, PosR: r,
	}
}

func player(id string, q, r int) game.CombatantState {
	return game.CombatantState{
		CombatantID: id, DisplayName: id, IsPlayerControlled: true,
		Health: 30, MaxHealth: 30, ActionPoints: 6, MaxActionPoints: 6,
		Level: 2, Accuracy: 70, PosQ: q, PosR: r,
	}
}

func TestChooseAction_AttacksWhenInRange(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 0, 0),
		enemy("coyote-1", BehaviorAggressive, 1, 0),
	}}
	act := ChooseAction(st, st.Combatant("coyote-1"), testWeapons)
	if act.Type != game.ActionAttack || act.TargetID != "party-1" {
		t.Fatalf("expected attack on party-1, got %+v", act)
	}
}

func TestChooseAction_ClosesTheGap(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 0, 0),
		enemy("coyote-1", BehaviorAggressive, 5, 0),
	}}
	actor := st.Combatant("coyote-1")
	act := ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionMove || act.TargetPos == nil {
		t.Fatalf("expected a move, got %+v", act)
	}
	before := engine.Distance(actor.Pos(), game.GridPos{Q: 0, R: 0})
	after := engine.Distance(*act.TargetPos, game.GridPos{Q: 0, R: 0})
	if after >= before {
		t.Fatalf("move must close the gap: %d -> %d", before, after)
	}
}

func TestChooseAction_TieBreaksOnCombatantID(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-2", 0, 0),
		player("party-1", 2, 0),
		enemy("coyote-1", BehaviorAggressive, 1, 0),
	}}
	act := ChooseAction(st, st.Combatant("coyote-1"), testWeapons)
	if act.Type != game.ActionAttack || act.TargetID != "party-1" {
		t.Fatalf("equidistant targets must resolve by id, got %+v", act)
	}
}

func TestChooseAction_ReloadsDryMagazine(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 0, 0),
		enemy("bandit-1", BehaviorAggressive, 2, 0),
	}}
	actor := st.Combatant("bandit-1")
	actor.WeaponID = "revolver"
	actor.MagazineCapacity = 6
	actor.AmmoInMagazine = 0
	act := ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionReload {
		t.Fatalf("expected reload, got %+v", act)
	}

	// Too few points to reload: give the turn up instead of wedging.
	actor.ActionPoints = 1
	act = ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionEndTurn {
		t.Fatalf("expected end_turn, got %+v", act)
	}
}

func TestChooseAction_DefensiveDigsInWhenHurt(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 0, 0),
		enemy("boss-1", BehaviorDefensive, 1, 0),
	}}
	actor := st.Combatant("boss-1")
	actor.Health = 4 // under 30%
	act := ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionDefend {
		t.Fatalf("expected defend, got %+v", act)
	}

	// Already braced: fight on.
	actor.StatusEffects = []game.StatusEffect{{Kind: game.StatusDefending, TurnsRemaining: 1, Magnitude: 50}}
	act = ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionAttack {
		t.Fatalf("expected attack once defending, got %+v", act)
	}
}

func TestChooseAction_SkittishBacksAway(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 1, 0),
		enemy("sharp-1", BehaviorSkittish, 0, 0),
	}}
	actor := st.Combatant("sharp-1")
	actor.Health = 4
	act := ChooseAction(st, actor, testWeapons)
	if act.Type != game.ActionMove || act.TargetPos == nil {
		t.Fatalf("expected a retreat move, got %+v", act)
	}
	threat := game.GridPos{Q: 1, R: 0}
	if engine.Distance(*act.TargetPos, threat) <= engine.Distance(actor.Pos(), threat) {
		t.Fatalf("retreat must open the gap, got %+v", act.TargetPos)
	}
}

func TestChooseAction_NoLivingPlayers(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		{CombatantID: "party-1", IsPlayerControlled: true, IsDead: true},
		enemy("coyote-1", BehaviorAggressive, 1, 0),
	}}
	act := ChooseAction(st, st.Combatant("coyote-1"), testWeapons)
	if act.Type != game.ActionEndTurn {
		t.Fatalf("expected end_turn, got %+v", act)
	}
}

func TestChooseAction_Deterministic(t *testing.T) {
	st := &game.CombatSession{Combatants: []game.CombatantState{
		player("party-1", 0, 0),
		enemy("coyote-1", BehaviorAggressive, 4, -2),
	}}
	actor := st.Combatant("coyote-1")
	first := ChooseAction(st, actor, testWeapons)
	for i := 0; i < 10; i++ {
		next := ChooseAction(st, actor, testWeapons)
		if next.Type != first.Type || next.TargetID != first.TargetID {
			t.Fatalf("choice not deterministic: %+v vs %+v", first, next)
		}
	}
}
