package game

import (
	"time"

	"gorm.io/gorm"
)

// Phase is the combat session lifecycle state. The two active phases
// alternate per the initiative order; the three terminal phases are each
// entered at most once and end the session.
type Phase string

const (
	PhaseStarting   Phase = "starting"
	PhasePlayerTurn Phase = "player_turn"
	PhaseEnemyTurn  Phase = "enemy_turn"
	PhaseVictory    Phase = "victory"
	PhaseDefeat     Phase = "defeat"
	PhaseFled       Phase = "fled"
)

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// ActionType is a string alias representing a submitted combat action.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type ActionType string

const (
	ActionAttack    ActionType = "attack"
	ActionAimedShot ActionType = "aimed_shot"
	ActionMove      ActionType = "move"
	ActionReload    ActionType = "reload"
	ActionUseItem   ActionType = "use_item"
	ActionDefend    ActionType = "defend"
	ActionFlee      ActionType = "flee"
	ActionEndTurn   ActionType = "end_turn"

	// ActionStatusTick labels the pseudo-entries produced by status
	// effects and automatic skips so the log stays a complete causal
	// trace of everything that changed health or AP.
	ActionStatusTick ActionType = "status_tick"
	ActionSkipTurn   ActionType = "skip_turn"
)

// StatusKind identifies a timed status effect. Content may extend the set;
// the engine only ticks and expires, it does not interpret unknown kinds.
type StatusKind string

const (
	StatusNone      StatusKind = ""
	StatusBleeding  StatusKind = "bleeding"
	StatusStunned   StatusKind = "stunned"
	StatusPoisoned  StatusKind = "poisoned"
	StatusBurning   StatusKind = "burning"
	StatusDefending StatusKind = "defending"
)

// DealsDamage reports whether a kind damages its carrier on the round tick.
func (k StatusKind) DealsDamage() bool {
	return k == StatusBleeding || k == StatusPoisoned || k == StatusBurning
}

// StatusEffect is one timed modifier attached to a combatant.
type StatusEffect struct {
	gorm.Model
	CombatantStateID uint       `json:"-"`
	Kind             StatusKind `json:"kind"`
	TurnsRemaining   int        `json:"turns_remaining"`
	Magnitude        int        `json:"magnitude"`
}

// GridPos is an abstract axial hex coordinate used only for range and
// movement-cost checks. No rendering semantics.
type GridPos struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// CombatantState is the authoritative runtime record for one participant.
type CombatantState struct {
	gorm.Model
	CombatSessionID uint `json:"-"`

	CombatantID        string `json:"combatant_id" gorm:"index"`
	DefinitionID       string `json:"definition_id"`
	DisplayName        string `json:"display_name"`
	IsPlayerControlled bool   `json:"is_player_controlled"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`

	ActionPoints    int `json:"action_points"`
	MaxActionPoints int `json:"max_action_points"`

	Level      int `json:"level"`
	Accuracy   int `json:"accuracy"`
	Evasion    int `json:"evasion"`
	Armor      int `json:"armor"`
	BaseDamage int `json:"base_damage"`

	// Behavior is the content-declared ai-hint tag (aggressive, defensive,
	// skittish). The engine ignores it; the enemy turn driver branches on
	// it.
	Behavior string `json:"behavior,omitempty"`

	PosQ int `json:"pos_q"`
	PosR int `json:"pos_r"`

	WeaponID         string `json:"weapon_id"`
	AmmoInMagazine   int    `json:"ammo_in_magazine"`
	MagazineCapacity int    `json:"magazine_capacity"`

	StatusEffects []StatusEffect `json:"status_effects"`

	HasActedThisTurn bool `json:"has_acted_this_turn"`
	IsDead           bool `json:"is_dead"`
}

// CombatLogEntry is the persisted form of one CombatResult. Entries are
// immutable once produced and appended in event order.
type CombatLogEntry struct {
	gorm.Model
	CombatSessionID uint `json:"-"`

	Round         int        `json:"round"`
	ActorID       string     `json:"actor_id"`
	TargetID      string     `json:"target_id,omitempty"`
	Action        ActionType `json:"action"`
	Success       bool       `json:"success"`
	Damage        int        `json:"damage"`
	Critical      bool       `json:"critical"`
	Dodged        bool       `json:"dodged"`
	StatusApplied StatusKind `json:"status_applied,omitempty"`
	TargetHealth  int        `json:"target_health"`
	Message       string     `json:"message"`
}

func (CombatLogEntry) TableName() string { return "combat_log" }

// CombatAction is a single submitted request. It is a transient value,
// never persisted.
type CombatAction struct {
	ActorID   string     `json:"actor_id"`
	Type      ActionType `json:"type"`
	TargetID  string     `json:"target_id,omitempty"`
	TargetPos *GridPos   `json:"target_position,omitempty"`
	PayloadID string     `json:"payload_id,omitempty"`
}

// CombatSession is the aggregate root. All mutation goes through the
// engine's SubmitAction entry point; everything else is read-only view.
type CombatSession struct {
	gorm.Model
	EncounterID string `json:"encounter_id"`
	PlayerName  string `json:"player_name" gorm:"index"`

	Phase            Phase    `json:"phase"`
	Round            int      `json:"round"`
	TurnOrder        []string `json:"turn_order" gorm:"serializer:json"`
	CurrentTurnIndex int      `json:"current_turn_index"`
	CanFlee          bool     `json:"can_flee"`

	// Seed and RngDraws reconstruct the dice stream when a persisted
	// session is reloaded, so a fixed seed reproduces an identical log.
	Seed     int64 `json:"-"`
	RngDraws int64 `json:"-"`

	Combatants []CombatantState `json:"combatants"`
	Log        []CombatLogEntry `json:"log"`

	RewardsGranted bool      `json:"-"`
	Message        string    `json:"message"`
	StartedAt      time.Time `json:"started_at"`

	ActionDeadline time.Time `json:"-"`
}

// Combatant returns the combatant with the given id, or nil.
func (s *CombatSession) Combatant(id string) *CombatantState {
	for i := range s.Combatants {
		if s.Combatants[i].CombatantID == id {
			return &s.Combatants[i]
		}
	}
	return nil
}

// ActiveCombatant returns the combatant whose turn it currently is, or nil
// when the session has no live order (starting or terminal phases).
func (s *CombatSession) ActiveCombatant() *CombatantState {
	if s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.TurnOrder) {
		return nil
	}
	return s.Combatant(s.TurnOrder[s.CurrentTurnIndex])
}

// LivingPlayers counts player-controlled combatants still alive.
func (s *CombatSession) LivingPlayers() int {
	n := 0
	for i := range s.Combatants {
		if s.Combatants[i].IsPlayerControlled && !s.Combatants[i].IsDead {
			n++
		}
	}
	return n
}

// LivingEnemies counts enemy combatants still alive.
func (s *CombatSession) LivingEnemies() int {
	n := 0
	for i := range s.Combatants {
		if !s.Combatants[i].IsPlayerControlled && !s.Combatants[i].IsDead {
			n++
		}
	}
	return n
}
