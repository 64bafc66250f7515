package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

type rawConfig struct {
	EnemyList     []game.EnemyDefinition  `json:"enemy_list"`
	WeaponList    []game.WeaponDefinition `json:"weapon_list"`
	ItemList      []game.ItemDefinition   `json:"item_list"`
	EncounterList []game.CombatEncounter  `json:"encounter_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig holds the validated content tables and the server address.
type LoadedConfig struct {
	Enemies       []game.EnemyDefinition
	Weapons       []game.WeaponDefinition
	Items         []game.ItemDefinition
	Encounters    []game.CombatEncounter
	ServerAddress string
}

// WeaponMap indexes the weapon table by id for the engine.
func (c *LoadedConfig) WeaponMap() map[string]game.WeaponDefinition {
	m := make(map[string]game.WeaponDefinition, len(c.Weapons))
	for _, w := range c.Weapons {
		m[w.WeaponID] = w
	}
	return m
}

// ItemMap indexes the item table by id for the engine.
func (c *LoadedConfig) ItemMap() map[string]game.ItemDefinition {
	m := make(map[string]game.ItemDefinition, len(c.Items))
	for _, it := range c.Items {
		m[it.ItemID] = it
	}
	return m
}

// LoadConfig reads and validates the content configuration at path. All
// cross-reference problems are load failures: a broken encounter must never
// surface mid-combat.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.EnemyList) == 0 {
		return nil, fmt.Errorf("config file %s: enemy_list is empty", path)
	}
	if len(rc.EncounterList) == 0 {
		return nil, fmt.Errorf("config file %s: encounter_list is empty", path)
	}

	enemyIDs := make(map[string]struct{}, len(rc.EnemyList))
	for _, e := range rc.EnemyList {
		if strings.TrimSpace(e.EnemyID) == "" {
			return nil, fmt.Errorf("config file %s: enemy entry missing 'enemy_id'", path)
		}
		if _, dup := enemyIDs[e.EnemyID]; dup {
			return nil, fmt.Errorf("config file %s: duplicate enemy_id '%s'", path, e.EnemyID)
		}
		enemyIDs[e.EnemyID] = struct{}{}
		if e.MaxHealth <= 0 {
			return nil, fmt.Errorf("config file %s: enemy '%s' needs max_health > 0", path, e.EnemyID)
		}
		if e.ActionPoints <= 0 {
			return nil, fmt.Errorf("config file %s: enemy '%s' needs action_points > 0", path, e.EnemyID)
		}
	}

	weaponIDs := make(map[string]struct{}, len(rc.WeaponList))
	for _, w := range rc.WeaponList {
		if strings.TrimSpace(w.WeaponID) == "" {
			return nil, fmt.Errorf("config file %s: weapon entry missing 'weapon_id'", path)
		}
		if _, dup := weaponIDs[w.WeaponID]; dup {
			return nil, fmt.Errorf("config file %s: duplicate weapon_id '%s'", path, w.WeaponID)
		}
		weaponIDs[w.WeaponID] = struct{}{}
		if w.Range < 1 {
			return nil, fmt.Errorf("config file %s: weapon '%s' needs range >= 1", path, w.WeaponID)
		}
	}
	for _, e := range rc.EnemyList {
		if e.WeaponID != "" {
			if _, ok := weaponIDs[e.WeaponID]; !ok {
				return nil, fmt.Errorf("config file %s: enemy '%s' references unknown weapon '%s'", path, e.EnemyID, e.WeaponID)
			}
		}
	}

	itemIDs := make(map[string]struct{}, len(rc.ItemList))
	for _, it := range rc.ItemList {
		if strings.TrimSpace(it.ItemID) == "" {
			return nil, fmt.Errorf("config file %s: item entry missing 'item_id'", path)
		}
		if _, dup := itemIDs[it.ItemID]; dup {
			return nil, fmt.Errorf("config file %s: duplicate item_id '%s'", path, it.ItemID)
		}
		itemIDs[it.ItemID] = struct{}{}
	}

	encounterIDs := make(map[string]struct{}, len(rc.EncounterList))
	for _, enc := range rc.EncounterList {
		if strings.TrimSpace(enc.EncounterID) == "" {
			return nil, fmt.Errorf("config file %s: encounter entry missing 'encounter_id'", path)
		}
		if _, dup := encounterIDs[enc.EncounterID]; dup {
			return nil, fmt.Errorf("config file %s: duplicate encounter_id '%s'", path, enc.EncounterID)
		}
		encounterIDs[enc.EncounterID] = struct{}{}
		if len(enc.Enemies) == 0 {
			return nil, fmt.Errorf("config file %s: encounter '%s' has no enemies", path, enc.EncounterID)
		}
		for _, ee := range enc.Enemies {
			if _, ok := enemyIDs[ee.EnemyID]; !ok {
				return nil, fmt.Errorf("config file %s: encounter '%s' references unknown enemy '%s'", path, enc.EncounterID, ee.EnemyID)
			}
			if ee.Count < 1 {
				return nil, fmt.Errorf("config file %s: encounter '%s' group '%s' needs count >= 1", path, enc.EncounterID, ee.EnemyID)
			}
		}
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Enemies:       rc.EnemyList,
		Weapons:       rc.WeaponList,
		Items:         rc.ItemList,
		Encounters:    rc.EncounterList,
		ServerAddress: addr,
	}, nil
}

// ServerEnv carries process-level knobs read from the environment.
type ServerEnv struct {
	ConfigPath     string        `env:"FRONTIER_CONFIG" envDefault:"./frontier_config.json"`
	DBPath         string        `env:"FRONTIER_DB" envDefault:"./data/frontier.db"`
	SessionTTL     time.Duration `env:"FRONTIER_SESSION_TTL" envDefault:"24h"`
	ActionTimeout  time.Duration `env:"FRONTIER_ACTION_TIMEOUT" envDefault:"10m"`
	ReaperInterval time.Duration `env:"FRONTIER_REAPER_INTERVAL" envDefault:"30s"`
}

// LoadServerEnv parses the environment-driven settings.
func LoadServerEnv() (*ServerEnv, error) {
	var se ServerEnv
	if err := env.Parse(&se); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &se, nil
}
