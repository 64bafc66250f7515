package service

import (
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/logging"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

// AbandonSession ends an in-progress session on the player's request. The
// party counts as having retreated; no rewards are handed out.
func AbandonSession(repo storage.Repository, sessionID uint, playerName string) (*game.CombatSession, error) {
	st, err := repo.GetSessionByID(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if st.PlayerName != playerName {
		return nil, ErrNotYourSession
	}
	if st.Phase.Terminal() {
		return st, nil
	}
	st.Phase = game.PhaseFled
	st.Message = "The party withdraws from the fight."
	finishSession(repo, st)
	if err := repo.UpdateSession(st); err != nil {
		return nil, err
	}
	return st, nil
}

// HandleTimedOutSession closes one session whose action deadline passed
// with no player input. The engine holds no resources, so expiry is just a
// phase transition plus bookkeeping.
func HandleTimedOutSession(repo storage.Repository, st *game.CombatSession) error {
	if st.Phase.Terminal() {
		return nil
	}
	st.Phase = game.PhaseFled
	st.Message = "Combat abandoned due to inactivity."
	finishSession(repo, st)
	logging.Info("expired idle combat session", logging.Fields{
		constants.LogFieldSessionID: st.ID,
		constants.LogFieldPlayer:    st.PlayerName,
	})
	return repo.UpdateSession(st)
}
