package service

import (
	"errors"
	"time"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/ai"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/logging"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

var (
	ErrSessionNotFound = errors.New("combat session not found")
	ErrNotYourSession  = errors.New("session does not belong to this player")
)

// ActionOutcome bundles what a single submission produced: the player
// action's result, the updated session view, and — exactly once, on
// victory — the encounter's declared reward block, copied verbatim for the
// external loot system.
type ActionOutcome struct {
	Session *game.CombatSession    `json:"session"`
	Result  *game.CombatLogEntry   `json:"result"`
	Rewards *game.EncounterRewards `json:"rewards,omitempty"`
}

// SubmitAction applies one player action to a persisted session, then
// drives enemy turns until the session is waiting on player input again or
// has reached a terminal phase.
func SubmitAction(repo storage.Repository, weapons map[string]game.WeaponDefinition, items map[string]game.ItemDefinition, sessionID uint, playerName string, action game.CombatAction, actionTimeout time.Duration) (*ActionOutcome, error) {
	st, err := repo.GetSessionByID(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if st.PlayerName != playerName {
		return nil, ErrNotYourSession
	}

	eng := engine.NewSession(st, weapons, items)
	result, err := eng.SubmitAction(action)
	if err != nil {
		return nil, err
	}

	driveEnemyTurns(eng, weapons)

	outcome := &ActionOutcome{Session: st, Result: result}
	if st.Phase.Terminal() {
		outcome.Rewards = finishSession(repo, st)
	} else {
		st.ActionDeadline = time.Now().Add(actionTimeout)
	}

	if err := repo.UpdateSession(st); err != nil {
		return nil, err
	}
	return outcome, nil
}

// driveEnemyTurns submits ai-chosen actions while an enemy holds the
// active slot. Every enemy action goes through the same validated
// SubmitAction path a client uses; a rejected choice falls back to ending
// the turn so the session can never wedge on a bad pick.
func driveEnemyTurns(eng *engine.Session, weapons map[string]game.WeaponDefinition) {
	st := eng.State
	for !st.Phase.Terminal() && st.Phase == game.PhaseEnemyTurn {
		actor := st.ActiveCombatant()
		if actor == nil || actor.IsPlayerControlled {
			return
		}
		act := ai.ChooseAction(st, actor, weapons)
		logging.Debug("enemy action", logging.Fields{
			constants.LogFieldActor:  actor.CombatantID,
			constants.LogFieldAction: act.Type,
			constants.LogFieldRound:  st.Round,
		})
		if _, err := eng.SubmitAction(act); err != nil {
			logging.Error("enemy action rejected; ending turn", err, logging.Fields{
				constants.LogFieldActor:  actor.CombatantID,
				constants.LogFieldAction: act.Type,
			})
			if _, err := eng.SubmitAction(game.CombatAction{ActorID: actor.CombatantID, Type: game.ActionEndTurn}); err != nil {
				return
			}
		}
	}
}

// finishSession records the player's outcome once and, on victory, returns
// the encounter's reward block. Item chance rolls stay with the external
// loot system.
func finishSession(repo storage.Repository, st *game.CombatSession) *game.EncounterRewards {
	if st.RewardsGranted {
		return nil
	}
	st.RewardsGranted = true
	st.ActionDeadline = time.Time{}

	if err := repo.RecordOutcome(st.PlayerName, st.Phase); err != nil {
		logging.Error("failed to record player outcome", err, logging.Fields{
			constants.LogFieldSessionID: st.ID,
			constants.LogFieldPlayer:    st.PlayerName,
		})
	}

	if st.Phase != game.PhaseVictory {
		return nil
	}
	enc, err := repo.GetEncounterByID(st.EncounterID)
	if err != nil {
		logging.Error("victorious session references unknown encounter", err, logging.Fields{
			constants.LogFieldSessionID:   st.ID,
			constants.LogFieldEncounterID: st.EncounterID,
		})
		return nil
	}
	rewards := enc.Rewards
	return &rewards
}
