package constants

// Centralized constants for env keys, headers, routes and combat tuning.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"

	// Session / Cookie names
	CookieSessionName = "if_session"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteLogin          = "/login"
	RouteVersion        = "/version"
	RouteEnemies        = "/enemies"
	RouteEncounters     = "/encounters"
	RouteEncounterStart = "/encounters/:encounterID/start"
	RouteSessionByID    = "/sessions/:sessionID"
	RouteSessionAction  = "/sessions/:sessionID/action"
	RouteSessionAbandon = "/sessions/:sessionID/abandon"
	RouteLeaderboard    = "/leaderboard"
	RoutePlayerStats    = "/player-stats"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeySession = "session"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidSessionID  = "Invalid session ID"
	ErrSessionNotFound   = "Combat session not found"
	ErrEncounterNotFound = "Encounter not found"
	ErrFailedFetchData   = "Failed to fetch data"
	ErrFailedStartCombat = "Failed to start combat"
	ErrFailedStoreAction = "Failed to store action"
	ErrSessionNotActive  = "Combat session is already over"
	ErrNotYourSession    = "Session does not belong to this player"
	ErrPartyRequired     = "At least one party member is required"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
	ErrNameRequired   = "player_name is required"
)

// Logging field names
const (
	LogFieldSessionID   = "session_id"
	LogFieldEncounterID = "encounter_id"
	LogFieldPlayer      = "player"
	LogFieldActor       = "actor"
	LogFieldAction      = "action"
	LogFieldPhase       = "phase"
	LogFieldRound       = "round"
	LogFieldAddr        = "addr"
)

// Combat tuning. Engine-wide balancing knobs; a per-weapon AP cost from
// content takes precedence over the type table below.
const (
	HitChanceMin = 5
	HitChanceMax = 95

	AimedShotBonus     = 25
	OptimalRange       = 3
	RangePenaltyPerHex = 5

	CritChancePercent  = 10
	DamageLevelDivisor = 2
	MinDamage          = 1

	DefendReductionPercent = 50
	DefendDurationTurns    = 1

	FleeBaseChance = 50
	FleeLevelBonus = 5

	UnarmedDamage       = 2
	UnarmedRange        = 1
	DefaultActionPoints = 6
)

// Type-level action point cost table. end_turn is intentionally free.
const (
	APCostAttack    = 3
	APCostAimedShot = 4
	APCostPerHex    = 1
	APCostReload    = 2
	APCostUseItem   = 2
	APCostDefend    = 2
	APCostFlee      = 2
	APCostEndTurn   = 0
)
