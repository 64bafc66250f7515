package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
)

// ListEnemies returns the enemy content catalog (config-overlaid stats).
func (h *CombatHandler) ListEnemies(c *gin.Context) {
	enemies, err := h.repo.GetEnemies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(enemies)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListEncounters returns the scripted encounter catalog.
func (h *CombatHandler) ListEncounters(c *gin.Context) {
	encounters, err := h.repo.GetEncounters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(encounters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchData})
		return
	}
	c.JSON(http.StatusOK, out)
}
