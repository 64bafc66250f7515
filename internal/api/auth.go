package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
)

const sessionTTLDefault = 24 * time.Hour

// setSessionCookie sets the session cookie with appropriate flags for dev/prod.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	secure := false
	if os.Getenv(constants.EnvSessionSecureCookie) == "1" {
		secure = true
	}
	c.SetCookie(constants.CookieSessionName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// AuthRequired validates the session cookie and injects the player name
// into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := parseAndValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set("playerName", claims.Sub)
		c.Next()
	}
}

type loginRequest struct {
	PlayerName string `json:"player_name"`
}

// Login issues a signed session cookie for a player name. There is no
// external identity provider in this deployment; the name is the identity.
func (h *CombatHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if name == "" || len(name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNameRequired})
		return
	}
	token, err := createSessionToken(name, sessionTTLDefault)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
		return
	}
	setSessionCookie(c, token, sessionTTLDefault)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Logged in", "player_name": name})
}

// sessionPlayerName extracts the authenticated player name from context.
func sessionPlayerName(c *gin.Context) string {
	v, _ := c.Get("playerName")
	s, _ := v.(string)
	return s
}
