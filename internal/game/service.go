package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kwlam/faantally/internal/scoring"
	"github.com/kwlam/faantally/internal/storage"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNoSession  = errors.New("no active session")
)

// Service owns the single active game session and its audit log. All
// mutations go through it; the key-value store is a mirror, not the
// source of truth — a failed write is logged and play continues.
type Service struct {
	mu      sync.Mutex
	store   storage.Store
	table   scoring.PayoutTable
	session *Session
	results []Result
}

func NewService(store storage.Store, table scoring.PayoutTable) *Service {
	return &Service{store: store, table: table}
}

// Load restores the persisted session and audit log at startup. An empty
// store is not an error; corrupt slots are dropped.
func (s *Service) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.store.Get(storage.KeyGameSession); err != nil {
		log.Printf("load game session: %v", err)
	} else if ok {
		var sess Session
		if err := json.Unmarshal([]byte(raw), &sess); err != nil {
			log.Printf("decode game session: %v", err)
		} else {
			s.session = &sess
		}
	}

	if raw, ok, err := s.store.Get(storage.KeyGameResults); err != nil {
		log.Printf("load game results: %v", err)
	} else if ok {
		var results []Result
		if err := json.Unmarshal([]byte(raw), &results); err != nil {
			log.Printf("decode game results: %v", err)
		} else {
			s.results = results
		}
	}
}

// Create starts a fresh match. Names must be non-empty and distinct
// after trimming.
func (s *Service) Create(player1, player2 string) (Session, error) {
	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)
	if player1 == "" || player2 == "" {
		return Session{}, fmt.Errorf("%w: player names must not be empty", ErrValidation)
	}
	if player1 == player2 {
		return Session{}, fmt.Errorf("%w: player names must differ", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Format(time.RFC3339)
	s.session = &Session{
		Player1Name:       player1,
		Player2Name:       player2,
		CurrentGameNumber: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.results = nil
	s.saveSession()
	s.clearResults()
	return *s.session, nil
}

// RecordWin commits a scored game: the winner gains the faan total and a
// win, the payout moves from loser to winner (net amounts stay zero-sum),
// the game counter advances and an audit result is appended.
func (s *Service) RecordWin(winner, points int, criteria []scoring.Criterion) (Session, error) {
	if winner != 1 && winner != 2 {
		return Session{}, fmt.Errorf("%w: winner must be player 1 or 2", ErrValidation)
	}
	if points < 0 {
		return Session{}, fmt.Errorf("%w: points must not be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, ErrNoSession
	}

	now := time.Now()
	payout := s.table.Payout(points)
	if winner == 1 {
		s.session.Player1TotalPoints += points
		s.session.Player1WinCount++
		s.session.Player1NetAmount += payout
		s.session.Player2NetAmount -= payout
	} else {
		s.session.Player2TotalPoints += points
		s.session.Player2WinCount++
		s.session.Player2NetAmount += payout
		s.session.Player1NetAmount -= payout
	}

	result := Result{
		ID:                 uuid.NewString(),
		GameNumber:         s.session.CurrentGameNumber,
		WinnerPlayerNumber: winner,
		WinnerName:         s.session.PlayerName(winner),
		Points:             points,
		ScoringCriteria:    criteria,
		Timestamp:          now.Format(time.RFC3339),
		Date:               now.Format("2006-01-02"),
		Time:               now.Format("15:04"),
	}
	s.results = append(s.results, result)

	s.session.CurrentGameNumber++
	s.session.UpdatedAt = now.Format(time.RFC3339)

	s.saveSession()
	s.saveResults()
	return *s.session, nil
}

// RecordDraw advances the game counter and nothing else. The draw shows
// up only in the derived draw count.
func (s *Service) RecordDraw() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, ErrNoSession
	}
	s.session.CurrentGameNumber++
	s.session.UpdatedAt = time.Now().Format(time.RFC3339)
	s.saveSession()
	return *s.session, nil
}

// StartOver keeps the player names, zeroes every counter and clears the
// audit log.
func (s *Service) StartOver() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, ErrNoSession
	}
	now := time.Now().Format(time.RFC3339)
	s.session = &Session{
		Player1Name:       s.session.Player1Name,
		Player2Name:       s.session.Player2Name,
		CurrentGameNumber: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.results = nil
	s.saveSession()
	s.clearResults()
	return *s.session, nil
}

// Reset clears the session and audit log from memory and from the store,
// returning to the no-session state. Safe to call without a session.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.results = nil
	if err := s.store.Remove(storage.KeyGameSession); err != nil {
		log.Printf("clear game session: %v", err)
	}
	if err := s.store.Remove(storage.KeyGameResults); err != nil {
		log.Printf("clear game results: %v", err)
	}
}

// Snapshot returns a copy of the active session, if any.
func (s *Service) Snapshot() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Results returns a copy of the audit log in game order.
func (s *Service) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Persistence mirroring. Callers hold the lock.

func (s *Service) saveSession() {
	raw, err := json.Marshal(s.session)
	if err != nil {
		log.Printf("encode game session: %v", err)
		return
	}
	if err := s.store.Set(storage.KeyGameSession, string(raw)); err != nil {
		log.Printf("save game session: %v", err)
	}
}

func (s *Service) saveResults() {
	raw, err := json.Marshal(s.results)
	if err != nil {
		log.Printf("encode game results: %v", err)
		return
	}
	if err := s.store.Set(storage.KeyGameResults, string(raw)); err != nil {
		log.Printf("save game results: %v", err)
	}
}

func (s *Service) clearResults() {
	if err := s.store.Remove(storage.KeyGameResults); err != nil {
		log.Printf("clear game results: %v", err)
	}
}
