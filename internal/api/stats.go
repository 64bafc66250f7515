package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

// ListLeaderboard returns the top players by victories.
func (h *CombatHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayerStats returns the authenticated player's aggregate record. A
// player with no finished battles gets an empty profile rather than a 404.
func (h *CombatHandler) GetPlayerStats(c *gin.Context) {
	name := sessionPlayerName(c)
	profile, err := h.repo.GetProfileByName(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			profile = &game.PlayerProfile{PlayerName: name}
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
			return
		}
	}
	out, err := MarshalIntoSnakeTimestamps(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	c.JSON(http.StatusOK, out)
}
