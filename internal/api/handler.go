package api

import (
	"time"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

// CombatHandler groups all combat-related HTTP handlers.
type CombatHandler struct {
	repo          storage.Repository
	weapons       map[string]game.WeaponDefinition
	items         map[string]game.ItemDefinition
	actionTimeout time.Duration
}

// NewCombatHandler creates a CombatHandler bound to the repository, the
// content payload tables and the configured per-action timeout.
func NewCombatHandler(repo storage.Repository, weapons map[string]game.WeaponDefinition, items map[string]game.ItemDefinition, actionTimeout time.Duration) *CombatHandler {
	return &CombatHandler{repo: repo, weapons: weapons, items: items, actionTimeout: actionTimeout}
}
