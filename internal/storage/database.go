package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the content template rows from config.
func OpenAndMigrate(dataSourceName string, enemies []game.EnemyDefinition, encounters []game.CombatEncounter) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&game.EnemyDefinition{},
		&game.CombatEncounter{},
		&game.CombatSession{},
		&game.CombatantState{},
		&game.StatusEffect{},
		&game.CombatLogEntry{},
		&game.PlayerProfile{},
	)
	if err != nil {
		return nil, err
	}

	seedContentRows(db, enemies, encounters)
	return db, nil
}

// seedContentRows inserts missing enemy/encounter id rows. Stats are never
// persisted; the config file stays the single source of truth and can be
// rebalanced without touching the database.
func seedContentRows(db *gorm.DB, enemies []game.EnemyDefinition, encounters []game.CombatEncounter) {
	for _, e := range enemies {
		var count int64
		db.Model(&game.EnemyDefinition{}).Where("enemy_id = ?", e.EnemyID).Count(&count)
		if count == 0 {
			db.Create(&game.EnemyDefinition{EnemyID: e.EnemyID, Name: e.Name})
		}
	}
	for _, e := range encounters {
		var count int64
		db.Model(&game.CombatEncounter{}).Where("encounter_id = ?", e.EncounterID).Count(&count)
		if count == 0 {
			db.Create(&game.CombatEncounter{EncounterID: e.EncounterID, Name: e.Name})
		}
	}
}
