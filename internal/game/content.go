package game

import "gorm.io/gorm"

// EnemyDefinition is an immutable content record seeding enemy combatants.
// Stats come from the config file (source of truth) and are intentionally
// not persisted; the DB row only pins the id/name so sessions can reference
// it across restarts.
type EnemyDefinition struct {
	gorm.Model
	EnemyID string `json:"enemy_id" gorm:"uniqueIndex"`
	Name    string `json:"name"`

	MaxHealth    int    `json:"max_health" gorm:"-"`
	ActionPoints int    `json:"action_points" gorm:"-"`
	Level        int    `json:"level" gorm:"-"`
	BaseDamage   int    `json:"base_damage" gorm:"-"`
	Armor        int    `json:"armor" gorm:"-"`
	Accuracy     int    `json:"accuracy" gorm:"-"`
	Evasion      int    `json:"evasion" gorm:"-"`
	WeaponID     string `json:"weapon_id" gorm:"-"`
	Behavior     string `json:"behavior" gorm:"-"`
}

func (EnemyDefinition) TableName() string { return "enemy_templates" }

// WeaponDefinition is the numeric effect payload of an attack action.
// Pure config content, never persisted. APCost 0 means "use the type-level
// cost table"; MagazineCapacity 0 means the weapon needs no ammunition.
type WeaponDefinition struct {
	WeaponID         string     `json:"weapon_id"`
	Name             string     `json:"name"`
	Damage           int        `json:"damage"`
	Range            int        `json:"range"`
	APCost           int        `json:"ap_cost"`
	MagazineCapacity int        `json:"magazine_capacity"`
	StatusKind       StatusKind `json:"status_kind"`
	StatusTurns      int        `json:"status_turns"`
	StatusMagnitude  int        `json:"status_magnitude"`
	StatusChance     int        `json:"status_chance"`
}

// ItemDefinition is a usable item's declared effect. The engine applies it
// opaquely: heal, cure a status kind, or attach one.
type ItemDefinition struct {
	ItemID     string     `json:"item_id"`
	Name       string     `json:"name"`
	APCost     int        `json:"ap_cost"`
	HealAmount int        `json:"heal_amount"`
	CureKind   StatusKind `json:"cure_kind"`
	ApplyKind  StatusKind `json:"apply_kind"`
	ApplyTurns int        `json:"apply_turns"`
	ApplyMag   int        `json:"apply_magnitude"`
}

// EncounterEnemy is one enemy group inside an encounter.
type EncounterEnemy struct {
	EnemyID string `json:"enemy_id"`
	Count   int    `json:"count"`
	Level   int    `json:"level,omitempty"`
}

// RewardItem is one entry of an encounter's loot table. Chance rolls are
// resolved by the external loot system, never by this service.
type RewardItem struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Chance   float64 `json:"chance"`
}

// EncounterRewards is the declared reward block, forwarded verbatim on
// victory.
type EncounterRewards struct {
	XP    int          `json:"xp"`
	Gold  int          `json:"gold"`
	Items []RewardItem `json:"items,omitempty"`
}

// CombatEncounter is a scripted encounter record. Like enemies, the stats
// live in config; only the id/name row is persisted.
type CombatEncounter struct {
	gorm.Model
	EncounterID string `json:"encounter_id" gorm:"uniqueIndex"`
	Name        string `json:"name"`

	Enemies  []EncounterEnemy `json:"enemies" gorm:"-"`
	MinLevel int              `json:"min_level" gorm:"-"`
	IsBoss   bool             `json:"is_boss" gorm:"-"`
	CanFlee  bool             `json:"can_flee" gorm:"-"`
	Rewards  EncounterRewards `json:"rewards" gorm:"-"`
}

func (CombatEncounter) TableName() string { return "encounter_templates" }

// PartyMember is the externally-owned stat block for one player-side
// combatant, handed in at session creation.
type PartyMember struct {
	Name         string `json:"name"`
	MaxHealth    int    `json:"max_health"`
	ActionPoints int    `json:"action_points"`
	Level        int    `json:"level"`
	Accuracy     int    `json:"accuracy"`
	Evasion      int    `json:"evasion"`
	Armor        int    `json:"armor"`
	BaseDamage   int    `json:"base_damage"`
	WeaponID     string `json:"weapon_id,omitempty"`
}

// PlayerProfile stores aggregate per-player outcome counts for the
// leaderboard.
type PlayerProfile struct {
	gorm.Model
	PlayerName    string `json:"player_name" gorm:"uniqueIndex"`
	BattlesFought int    `json:"battles_fought"`
	Victories     int    `json:"victories"`
	Defeats       int    `json:"defeats"`
	Retreats      int    `json:"retreats"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }
