package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/service"
)

type startRequest struct {
	Party []game.PartyMember `json:"party"`
	Seed  int64              `json:"seed,omitempty"`
}

// StartEncounter creates a combat session for the authenticated player.
func (h *CombatHandler) StartEncounter(c *gin.Context) {
	encounterID := c.Param("encounterID")
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.Party) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPartyRequired})
		return
	}

	st, err := service.StartEncounter(h.repo, h.weapons, h.items, sessionPlayerName(c), encounterID, req.Party, req.Seed, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEncounterNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		case errors.Is(err, service.ErrEmptyParty), errors.Is(err, service.ErrInvalidPartyMember), errors.Is(err, service.ErrPartyUnderleveled), errors.Is(err, engine.ErrNoEnemies):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartCombat})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(st)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStartCombat})
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeySession: out})
}

// GetSession returns the read-only session view (phase, combatants, log).
func (h *CombatHandler) GetSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	st, err := h.repo.GetSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	if st.PlayerName != sessionPlayerName(c) {
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotYourSession})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(st)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySession: out})
}

// SubmitAction applies one player action and returns the result, the
// updated session and — on victory — the declared rewards block.
func (h *CombatHandler) SubmitAction(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	var action game.CombatAction
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	outcome, err := service.SubmitAction(h.repo, h.weapons, h.items, id, sessionPlayerName(c), action, h.actionTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		case errors.Is(err, service.ErrNotYourSession):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotYourSession})
		case errors.Is(err, engine.ErrSessionOver):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionNotActive})
		case errors.Is(err, engine.ErrNotActiveCombatant),
			errors.Is(err, engine.ErrInsufficientActionPoints),
			errors.Is(err, engine.ErrInvalidTarget),
			errors.Is(err, engine.ErrNoAmmo),
			errors.Is(err, engine.ErrIllegalFlee),
			errors.Is(err, engine.ErrNothingToReload),
			errors.Is(err, engine.ErrUnknownItem),
			errors.Is(err, engine.ErrUnknownAction):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}

	out, err := MarshalIntoSnakeTimestamps(outcome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		return
	}
	c.JSON(http.StatusOK, out)
}

// AbandonSession ends a session early at the player's request.
func (h *CombatHandler) AbandonSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	st, err := service.AbandonSession(h.repo, id, sessionPlayerName(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		case errors.Is(err, service.ErrNotYourSession):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrNotYourSession})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: st.Message, "phase": st.Phase})
}
