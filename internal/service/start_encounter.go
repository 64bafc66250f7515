package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/logging"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/storage"
)

var (
	ErrEncounterNotFound  = errors.New("encounter not found")
	ErrEmptyParty         = errors.New("party must have at least one member")
	ErrPartyUnderleveled  = errors.New("party does not meet the encounter's minimum level")
	ErrInvalidPartyMember = errors.New("party member has invalid stats")
)

// Content places the two sides on opposite edges of the abstract grid,
// outside optimal weapon range so positioning matters from turn one.
const (
	partyColumn = 0
	enemyColumn = 5
)

// StartEncounter instantiates a combat session from an encounter and the
// externally-owned party roster, computes the first turn order and
// persists the session. A zero seed picks one from the clock; tests pass a
// fixed seed for reproducible fights.
func StartEncounter(repo storage.Repository, weapons map[string]game.WeaponDefinition, items map[string]game.ItemDefinition, playerName, encounterID string, party []game.PartyMember, seed int64, actionTimeout time.Duration) (*game.CombatSession, error) {
	enc, err := repo.GetEncounterByID(encounterID)
	if err != nil {
		return nil, ErrEncounterNotFound
	}
	if len(party) == 0 {
		return nil, ErrEmptyParty
	}

	maxLevel := 0
	for _, m := range party {
		if m.Name == "" || m.MaxHealth <= 0 {
			return nil, ErrInvalidPartyMember
		}
		if m.Level > maxLevel {
			maxLevel = m.Level
		}
	}
	if maxLevel < enc.MinLevel {
		return nil, ErrPartyUnderleveled
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	st := &game.CombatSession{
		EncounterID: enc.EncounterID,
		PlayerName:  playerName,
		Phase:       game.PhaseStarting,
		CanFlee:     enc.CanFlee,
		Seed:        seed,
		StartedAt:   time.Now().UTC(),
	}

	for i, m := range party {
		ap := m.ActionPoints
		if ap <= 0 {
			ap = constants.DefaultActionPoints
		}
		c := game.CombatantState{
			CombatantID:        fmt.Sprintf("party-%d", i+1),
			DefinitionID:       "party",
			DisplayName:        m.Name,
			IsPlayerControlled: true,
			Health:             m.MaxHealth,
			MaxHealth:          m.MaxHealth,
			ActionPoints:       ap,
			MaxActionPoints:    ap,
			Level:              m.Level,
			Accuracy:           m.Accuracy,
			Evasion:            m.Evasion,
			Armor:              m.Armor,
			BaseDamage:         m.BaseDamage,
			PosQ:               partyColumn,
			PosR:               i,
			WeaponID:           m.WeaponID,
		}
		if w, ok := weapons[m.WeaponID]; ok {
			c.AmmoInMagazine = w.MagazineCapacity
			c.MagazineCapacity = w.MagazineCapacity
		}
		st.Combatants = append(st.Combatants, c)
	}

	slot := 0
	for _, group := range enc.Enemies {
		def, err := repo.GetEnemyByID(group.EnemyID)
		if err != nil {
			return nil, ErrEncounterNotFound
		}
		level := def.Level
		if group.Level > 0 {
			level = group.Level
		}
		for n := 0; n < group.Count; n++ {
			c := game.CombatantState{
				CombatantID:        fmt.Sprintf("%s-%d", def.EnemyID, slot+1),
				DefinitionID:       def.EnemyID,
				DisplayName:        def.Name,
				IsPlayerControlled: false,
				Health:             def.MaxHealth,
				MaxHealth:          def.MaxHealth,
				ActionPoints:       def.ActionPoints,
				MaxActionPoints:    def.ActionPoints,
				Level:              level,
				Accuracy:           def.Accuracy,
				Evasion:            def.Evasion,
				Armor:              def.Armor,
				BaseDamage:         def.BaseDamage,
				Behavior:           def.Behavior,
				PosQ:               enemyColumn,
				PosR:               slot,
				WeaponID:           def.WeaponID,
			}
			if w, ok := weapons[def.WeaponID]; ok {
				c.AmmoInMagazine = w.MagazineCapacity
				c.MagazineCapacity = w.MagazineCapacity
			}
			st.Combatants = append(st.Combatants, c)
			slot++
		}
	}

	eng := engine.NewSession(st, weapons, items)
	if err := eng.Begin(); err != nil {
		return nil, err
	}

	// The first slot may belong to an enemy; play the enemy turns out so
	// the caller always receives a session waiting on player input (or
	// already decided).
	driveEnemyTurns(eng, weapons)

	st.ActionDeadline = time.Now().Add(actionTimeout)
	if err := repo.CreateSession(st); err != nil {
		return nil, err
	}
	logging.Info("combat session started", logging.Fields{
		constants.LogFieldSessionID:   st.ID,
		constants.LogFieldEncounterID: st.EncounterID,
		constants.LogFieldPlayer:      playerName,
		constants.LogFieldPhase:       st.Phase,
	})
	return st, nil
}
