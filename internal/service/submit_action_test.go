package service

import (
	"errors"
	"testing"
	"time"

	"github.com/arcade-cabinet/iron-frontier-sub004/internal/engine"
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/game"
)

func TestSubmitAction_SessionNotFound(t *testing.T) {
	repo := newMockRepo()
	_, err := SubmitAction(repo, nil, nil, 99, "sal", game.CombatAction{}, time.Minute)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitAction_WrongOwner(t *testing.T) {
	repo := newMockRepo()
	st, err := StartEncounter(repo, nil, nil, "sal", "pack", testParty(), 42, time.Minute)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, err = SubmitAction(repo, nil, nil, st.ID, "rustler", game.CombatAction{ActorID: "party-1", Type: game.ActionEndTurn}, time.Minute)
	if !errors.Is(err, ErrNotYourSession) {
		t.Fatalf("expected ErrNotYourSession, got %v", err)
	}
}

func TestSubmitAction_EngineErrorsPassThrough(t *testing.T) {
	repo := newMockRepo()
	st, err := StartEncounter(repo, nil, nil, "sal", "pack", testParty(), 42, time.Minute)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	updatesBefore := repo.updates
	_, err = SubmitAction(repo, nil, nil, st.ID, "sal", game.CombatAction{ActorID: "coyote-1", Type: game.ActionEndTurn}, time.Minute)
	if !errors.Is(err, engine.ErrNotActiveCombatant) {
		t.Fatalf("expected ErrNotActiveCombatant, got %v", err)
	}
	if repo.updates != updatesBefore {
		t.Fatalf("a rejected action must not be persisted")
	}
}

func TestSubmitAction_DrivesEnemyTurnsBackToPlayer(t *testing.T) {
	repo := newMockRepo()
	st, err := StartEncounter(repo, nil, nil, "sal", "pack", testParty(), 42, 10*time.Minute)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	outcome, err := SubmitAction(repo, nil, nil, st.ID, "sal", game.CombatAction{ActorID: "party-1", Type: game.ActionEndTurn}, 10*time.Minute)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Result == nil || outcome.Result.Action != game.ActionEndTurn {
		t.Fatalf("expected the player's own result, got %+v", outcome.Result)
	}
	// Both coyotes played their turns and the session is waiting on the
	// player again in the next round.
	if outcome.Session.Phase != game.PhasePlayerTurn {
		t.Fatalf("expected player turn, got %v", outcome.Session.Phase)
	}
	if outcome.Session.Round != 2 {
		t.Fatalf("expected round 2, got %d", outcome.Session.Round)
	}
	enemyActed := false
	for _, e := range outcome.Session.Log {
		if e.ActorID == "coyote-1" || e.ActorID == "coyote-2" {
			enemyActed = true
		}
	}
	if !enemyActed {
		t.Fatalf("expected enemy log entries, got %+v", outcome.Session.Log)
	}
	if outcome.Rewards != nil {
		t.Fatalf("no rewards before the fight is decided")
	}
	if repo.updates == 0 {
		t.Fatalf("expected the session to be persisted")
	}
	if !outcome.Session.ActionDeadline.After(time.Now()) {
		t.Fatalf("expected a refreshed action deadline")
	}
}

func TestSubmitAction_VictoryForwardsRewardsOnce(t *testing.T) {
	repo := newMockRepo()

	// Hand-built duel: the lone coyote is one bleeding tick from death, so
	// the fight ends deterministically at the round wrap.
	st := &game.CombatSession{
		EncounterID: "pack",
		PlayerName:  "sal",
		Phase:       game.PhaseStarting,
		CanFlee:     true,
		Seed:        7,
		Combatants: []game.CombatantState{
			{
				CombatantID: "party-1", DisplayName: "Sal", IsPlayerControlled: true,
				Health: 50, MaxHealth: 50, ActionPoints: 6, MaxActionPoints: 6,
				Level: 2, Accuracy: 90, Evasion: 10, Armor: 2, BaseDamage: 5,
			},
			{
				CombatantID: "coyote-1", DisplayName: "Coyote",
				Health: 1, MaxHealth: 14, ActionPoints: 5, MaxActionPoints: 5,
				Level: 1, Accuracy: 55, Evasion: 20, Behavior: "aggressive", PosQ: 1,
				StatusEffects: []game.StatusEffect{{Kind: game.StatusBleeding, TurnsRemaining: 2, Magnitude: 5}},
			},
		},
	}
	eng := engine.NewSession(st, nil, nil)
	if err := eng.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	st.ID = 1
	repo.sessions[1] = st

	outcome, err := SubmitAction(repo, nil, nil, 1, "sal", game.CombatAction{ActorID: "party-1", Type: game.ActionEndTurn}, time.Minute)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Session.Phase != game.PhaseVictory {
		t.Fatalf("expected victory, got %v", outcome.Session.Phase)
	}
	if outcome.Rewards == nil || outcome.Rewards.XP != 50 || outcome.Rewards.Gold != 5 {
		t.Fatalf("expected the encounter's reward block, got %+v", outcome.Rewards)
	}
	if len(repo.outcomes) != 1 || repo.outcomes[0] != game.PhaseVictory {
		t.Fatalf("expected one recorded victory, got %v", repo.outcomes)
	}
	if !outcome.Session.RewardsGranted {
		t.Fatalf("expected rewards to be marked granted")
	}
	if !outcome.Session.ActionDeadline.IsZero() {
		t.Fatalf("a finished session keeps no deadline")
	}
}
