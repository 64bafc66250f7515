package engine

import (
	"errors"
	"fmt"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

var (
	ErrSessionOver              = errors.New("combat session is over")
	ErrNotActiveCombatant       = errors.New("not the active combatant")
	ErrInsufficientActionPoints = errors.New("insufficient action points")
	ErrInvalidTarget            = errors.New("invalid target")
	ErrNoAmmo                   = errors.New("no ammunition in magazine")
	ErrIllegalFlee              = errors.New("fleeing is disabled for this encounter")
	ErrNothingToReload          = errors.New("weapon does not use ammunition")
	ErrUnknownAction            = errors.New("unknown action type")
	ErrUnknownItem              = errors.New("unknown item")
	ErrNoEnemies                = errors.New("encounter has no enemies")
	ErrNoParty                  = errors.New("session has no player combatants")
)

// Session binds a combat session's state to its dice stream and the content
// payload tables. It is the only component that mutates the state; callers
// submit one action at a time and read the resulting log entry.
type Session struct {
	State   *game.CombatSession
	dice    *Dice
	weapons map[string]game.WeaponDefinition
	items   map[string]game.ItemDefinition
}

// NewSession wraps existing session state, rebuilding the dice stream from
// the persisted seed and draw count.
func NewSession(state *game.CombatSession, weapons map[string]game.WeaponDefinition, items map[string]game.ItemDefinition) *Session {
	return &Session{
		State:   state,
		dice:    NewDice(state.Seed, state.RngDraws),
		weapons: weapons,
		items:   items,
	}
}

// Begin computes the first turn order and moves the session out of the
// starting phase. A session without enemies or without a party is corrupt
// content and fails construction rather than surfacing mid-combat.
func (s *Session) Begin() error {
	st := s.State
	if st.LivingEnemies() == 0 {
		return ErrNoEnemies
	}
	if st.LivingPlayers() == 0 {
		return ErrNoParty
	}
	st.Round = 1
	st.TurnOrder = ComputeTurnOrder(st)
	st.CurrentTurnIndex = -1
	s.advanceTurn()
	st.Message = "Combat begins."
	s.syncDraws()
	return nil
}

// SubmitAction is the session's sole mutating entry point. Validation is
// strictly before mutation: a rejected action leaves the session unchanged
// and produces no log entry.
func (s *Session) SubmitAction(a game.CombatAction) (*game.CombatLogEntry, error) {
	st := s.State
	if st.Phase.Terminal() {
		return nil, ErrSessionOver
	}
	actor := st.ActiveCombatant()
	if actor == nil || actor.CombatantID != a.ActorID {
		return nil, ErrNotActiveCombatant
	}
	cost, err := s.actionCost(actor, a)
	if err != nil {
		return nil, err
	}
	if cost > actor.ActionPoints {
		return nil, ErrInsufficientActionPoints
	}
	if err := s.validateAction(actor, a); err != nil {
		return nil, err
	}

	actor.SpendActionPoints(cost)
	var entry game.CombatLogEntry
	switch a.Type {
	case game.ActionAttack:
		entry = s.execAttack(actor, a, false)
	case game.ActionAimedShot:
		entry = s.execAttack(actor, a, true)
	case game.ActionMove:
		entry = s.execMove(actor, a, cost)
	case game.ActionReload:
		entry = s.execReload(actor)
	case game.ActionUseItem:
		entry = s.execUseItem(actor, a)
	case game.ActionDefend:
		entry = s.execDefend(actor)
	case game.ActionFlee:
		entry = s.execFlee(actor)
	case game.ActionEndTurn:
		entry = game.CombatLogEntry{
			Round:        st.Round,
			ActorID:      actor.CombatantID,
			Action:       game.ActionEndTurn,
			Success:      true,
			TargetHealth: actor.Health,
			Message:      fmt.Sprintf("%s ends the turn", actor.DisplayName),
		}
	}
	actor.HasActedThisTurn = true
	s.appendLog(entry)
	resultIdx := len(st.Log) - 1

	if !st.Phase.Terminal() {
		if !s.evaluateOutcome() {
			if a.Type == game.ActionEndTurn || actor.ActionPoints == 0 {
				s.advanceTurn()
			}
		}
	}
	s.syncDraws()
	return &st.Log[resultIdx], nil
}

// actionCost computes the AP cost for an action. A weapon-declared cost is
// authoritative over the type table; the aimed variant pays its surcharge
// on top of the weapon's own cost.
func (s *Session) actionCost(actor *game.CombatantState, a game.CombatAction) (int, error) {
	switch a.Type {
	case game.ActionAttack, game.ActionAimedShot:
		cost := constants.APCostAttack
		if w, ok := s.weapons[actor.WeaponID]; ok && w.APCost > 0 {
			cost = w.APCost
		}
		if a.Type == game.ActionAimedShot {
			cost += constants.APCostAimedShot - constants.APCostAttack
		}
		return cost, nil
	case game.ActionMove:
		if a.TargetPos == nil {
			return 0, ErrInvalidTarget
		}
		dist := Distance(actor.Pos(), *a.TargetPos)
		if dist < 1 {
			return 0, ErrInvalidTarget
		}
		return dist * constants.APCostPerHex, nil
	case game.ActionReload:
		return constants.APCostReload, nil
	case game.ActionUseItem:
		if it, ok := s.items[a.PayloadID]; ok && it.APCost > 0 {
			return it.APCost, nil
		}
		return constants.APCostUseItem, nil
	case game.ActionDefend:
		return constants.APCostDefend, nil
	case game.ActionFlee:
		return constants.APCostFlee, nil
	case game.ActionEndTurn:
		return constants.APCostEndTurn, nil
	default:
		return 0, ErrUnknownAction
	}
}

// validateAction holds every check that must pass before any mutation so
// rejections are atomic. No dice are drawn here.
func (s *Session) validateAction(actor *game.CombatantState, a game.CombatAction) error {
	switch a.Type {
	case game.ActionAttack, game.ActionAimedShot:
		target := s.State.Combatant(a.TargetID)
		if target == nil || target.IsDead || target.CombatantID == actor.CombatantID {
			return ErrInvalidTarget
		}
		w := s.weaponOf(actor)
		if Distance(actor.Pos(), target.Pos()) > w.Range {
			return ErrInvalidTarget
		}
		if w.MagazineCapacity > 0 && actor.AmmoInMagazine <= 0 {
			return ErrNoAmmo
		}
	case game.ActionMove:
		for i := range s.State.Combatants {
			c := &s.State.Combatants[i]
			if !c.IsDead && c.Pos() == *a.TargetPos {
				return ErrInvalidTarget
			}
		}
	case game.ActionReload:
		w := s.weaponOf(actor)
		if w.MagazineCapacity == 0 {
			return ErrNothingToReload
		}
	case game.ActionUseItem:
		if _, ok := s.items[a.PayloadID]; !ok {
			return ErrUnknownItem
		}
		if a.TargetID != "" {
			t := s.State.Combatant(a.TargetID)
			if t == nil || t.IsDead || t.IsPlayerControlled != actor.IsPlayerControlled {
				return ErrInvalidTarget
			}
		}
	case game.ActionFlee:
		if !s.State.CanFlee {
			return ErrIllegalFlee
		}
	case game.ActionDefend, game.ActionEndTurn:
	default:
		return ErrUnknownAction
	}
	return nil
}

// weaponOf resolves the actor's equipped weapon, falling back to bare
// hands.
func (s *Session) weaponOf(actor *game.CombatantState) game.WeaponDefinition {
	if w, ok := s.weapons[actor.WeaponID]; ok {
		return w
	}
	dmg := actor.BaseDamage
	if dmg == 0 {
		dmg = constants.UnarmedDamage
	}
	return game.WeaponDefinition{
		WeaponID: "unarmed",
		Name:     "bare hands",
		Damage:   dmg,
		Range:    constants.UnarmedRange,
	}
}

// evaluateOutcome checks the termination conditions and switches to a
// terminal phase when one holds. Returns whether the session ended.
func (s *Session) evaluateOutcome() bool {
	st := s.State
	if st.LivingEnemies() == 0 {
		st.Phase = game.PhaseVictory
		st.Message = "All enemies are down. Victory."
		return true
	}
	if st.LivingPlayers() == 0 {
		st.Phase = game.PhaseDefeat
		st.Message = "The party has fallen."
		return true
	}
	return false
}

func (s *Session) appendLog(entry game.CombatLogEntry) {
	s.State.Log = append(s.State.Log, entry)
}

func (s *Session) syncDraws() {
	s.State.RngDraws = s.dice.Draws()
}
