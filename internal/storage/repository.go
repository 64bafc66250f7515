package storage

import (
	"time"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

type Repository interface {
	// Content lookups. Stats always come from the config overlay; DB rows
	// only pin ids across restarts.
	GetEnemies() ([]game.EnemyDefinition, error)
	GetEnemyByID(id string) (*game.EnemyDefinition, error)
	GetEncounters() ([]game.CombatEncounter, error)
	GetEncounterByID(id string) (*game.CombatEncounter, error)

	// Combat sessions
	CreateSession(s *game.CombatSession) error
	GetSessionByID(id uint) (*game.CombatSession, error)
	UpdateSession(s *game.CombatSession) error
	// FindTimedOutSessions returns sessions still in an active phase whose
	// action deadline is at or before the provided time.
	FindTimedOutSessions(now time.Time) ([]game.CombatSession, error)

	// Player profiles / leaderboard
	RecordOutcome(playerName string, phase game.Phase) error
	GetProfileByName(playerName string) (*game.PlayerProfile, error)
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
}
