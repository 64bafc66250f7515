package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

var ErrNotFound = errors.New("record not found")

type sqliteRepository struct {
	db *gorm.DB
	// Config is the source of truth for content stats; DB rows only carry
	// ids and names. These overlay maps are keyed by content id.
	configEnemies    map[string]game.EnemyDefinition
	configEncounters map[string]game.CombatEncounter
}

func NewSQLiteRepository(db *gorm.DB, enemies []game.EnemyDefinition, encounters []game.CombatEncounter) Repository {
	em := make(map[string]game.EnemyDefinition, len(enemies))
	for _, e := range enemies {
		em[e.EnemyID] = e
	}
	cm := make(map[string]game.CombatEncounter, len(encounters))
	for _, e := range encounters {
		cm[e.EncounterID] = e
	}
	return &sqliteRepository{db: db, configEnemies: em, configEncounters: cm}
}

func (r *sqliteRepository) overlayEnemy(e *game.EnemyDefinition) {
	if conf, ok := r.configEnemies[e.EnemyID]; ok {
		e.MaxHealth = conf.MaxHealth
		e.ActionPoints = conf.ActionPoints
		e.Level = conf.Level
		e.BaseDamage = conf.BaseDamage
		e.Armor = conf.Armor
		e.Accuracy = conf.Accuracy
		e.Evasion = conf.Evasion
		e.WeaponID = conf.WeaponID
		e.Behavior = conf.Behavior
	}
}

func (r *sqliteRepository) overlayEncounter(e *game.CombatEncounter) {
	if conf, ok := r.configEncounters[e.EncounterID]; ok {
		e.Enemies = conf.Enemies
		e.MinLevel = conf.MinLevel
		e.IsBoss = conf.IsBoss
		e.CanFlee = conf.CanFlee
		e.Rewards = conf.Rewards
	}
}

func (r *sqliteRepository) GetEnemies() ([]game.EnemyDefinition, error) {
	var enemies []game.EnemyDefinition
	if err := r.db.Order("enemy_id").Find(&enemies).Error; err != nil {
		return nil, err
	}
	for i := range enemies {
		r.overlayEnemy(&enemies[i])
	}
	return enemies, nil
}

func (r *sqliteRepository) GetEnemyByID(id string) (*game.EnemyDefinition, error) {
	var e game.EnemyDefinition
	if err := r.db.Where("enemy_id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r.overlayEnemy(&e)
	return &e, nil
}

func (r *sqliteRepository) GetEncounters() ([]game.CombatEncounter, error) {
	var encounters []game.CombatEncounter
	if err := r.db.Order("encounter_id").Find(&encounters).Error; err != nil {
		return nil, err
	}
	for i := range encounters {
		r.overlayEncounter(&encounters[i])
	}
	return encounters, nil
}

func (r *sqliteRepository) GetEncounterByID(id string) (*game.CombatEncounter, error) {
	var e game.CombatEncounter
	if err := r.db.Where("encounter_id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r.overlayEncounter(&e)
	return &e, nil
}

func (r *sqliteRepository) CreateSession(s *game.CombatSession) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByID(id uint) (*game.CombatSession, error) {
	var s game.CombatSession
	err := r.db.
		Preload("Combatants.StatusEffects").
		Preload("Log", func(db *gorm.DB) *gorm.DB { return db.Order("combat_log.id") }).
		First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.CombatSession) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) FindTimedOutSessions(now time.Time) ([]game.CombatSession, error) {
	var sessions []game.CombatSession
	err := r.db.
		Where("phase IN ?", []game.Phase{game.PhasePlayerTurn, game.PhaseEnemyTurn}).
		Where("action_deadline <= ?", now).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// RecordOutcome bumps the per-player aggregate counters for a finished
// session.
func (r *sqliteRepository) RecordOutcome(playerName string, phase game.Phase) error {
	p := game.PlayerProfile{PlayerName: playerName}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_name"}},
		DoNothing: true,
	}).Create(&p).Error; err != nil {
		return err
	}
	updates := map[string]interface{}{
		"battles_fought": gorm.Expr("battles_fought + 1"),
	}
	switch phase {
	case game.PhaseVictory:
		updates["victories"] = gorm.Expr("victories + 1")
	case game.PhaseDefeat:
		updates["defeats"] = gorm.Expr("defeats + 1")
	case game.PhaseFled:
		updates["retreats"] = gorm.Expr("retreats + 1")
	}
	return r.db.Model(&game.PlayerProfile{}).
		Where("player_name = ?", playerName).
		Updates(updates).Error
}

func (r *sqliteRepository) GetProfileByName(playerName string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	if err := r.db.Where("player_name = ?", playerName).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []game.PlayerProfile
	if err := r.db.Model(&game.PlayerProfile{}).
		Order("victories DESC").
		Order("battles_fought DESC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
