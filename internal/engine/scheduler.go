package engine

import (
	"fmt"
	"sort"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

// ComputeTurnOrder builds the initiative order for a round: living
// combatants stable-sorted by accuracy (desc), ties broken by combatant id
// so re-runs with the same seed produce the same order. Dead combatants are
// excluded entirely; stunned ones stay in the order and are auto-skipped
// when their slot comes up.
func ComputeTurnOrder(s *game.CombatSession) []string {
	type slot struct {
		id       string
		accuracy int
	}
	slots := make([]slot, 0, len(s.Combatants))
	for i := range s.Combatants {
		c := &s.Combatants[i]
		if c.IsDead {
			continue
		}
		slots = append(slots, slot{id: c.CombatantID, accuracy: c.Accuracy})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].accuracy == slots[j].accuracy {
			return slots[i].id < slots[j].id
		}
		return slots[i].accuracy > slots[j].accuracy
	})
	order := make([]string, len(slots))
	for i, sl := range slots {
		order[i] = sl.id
	}
	return order
}

// advanceTurn moves the active-combatant pointer forward, wrapping into a
// new round when it passes the end of the order. Dead slots are passed over
// silently; stunned slots are skipped with a log entry, as an implicit
// end_turn that consumes no action points. The incoming combatant gets its
// action points reset.
func (s *Session) advanceTurn() {
	st := s.State
	for {
		next := st.CurrentTurnIndex + 1
		if next >= len(st.TurnOrder) {
			s.endRound()
			if st.Phase.Terminal() {
				return
			}
			next = 0
		}
		st.CurrentTurnIndex = next
		c := st.ActiveCombatant()
		if c == nil || c.IsDead {
			continue
		}
		if c.IsStunned() {
			s.appendLog(game.CombatLogEntry{
				Round:         st.Round,
				ActorID:       c.CombatantID,
				Action:        game.ActionSkipTurn,
				Success:       true,
				StatusApplied: game.StatusStunned,
				TargetHealth:  c.Health,
				Message:       fmt.Sprintf("%s is stunned and skips the turn", c.DisplayName),
			})
			continue
		}
		c.ResetForNewTurn()
		if c.IsPlayerControlled {
			st.Phase = game.PhasePlayerTurn
		} else {
			st.Phase = game.PhaseEnemyTurn
		}
		return
	}
}

// endRound closes the current round: status effects tick once for every
// living combatant (a poison tick can itself end the fight), the outcome is
// re-evaluated, and the next round's order is recomputed since health and
// statuses may have changed who is alive or stunned.
func (s *Session) endRound() {
	st := s.State
	st.Round++
	for i := range st.Combatants {
		c := &st.Combatants[i]
		if c.IsDead {
			continue
		}
		for _, entry := range tickCombatantStatuses(c, st.Round) {
			s.appendLog(entry)
		}
	}
	if s.evaluateOutcome() {
		return
	}
	st.TurnOrder = ComputeTurnOrder(st)
	st.CurrentTurnIndex = -1
}
