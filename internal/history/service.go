package history

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kwlam/faantally/internal/game"
)

var ErrNoGames = errors.New("no games played yet")

// Service archives finished matches and reads them back, always scoped
// to the owning user.
type Service struct {
	repo  *Repo
	games *game.Service
}

func NewService(repo *Repo, games *game.Service) *Service {
	return &Service{repo: repo, games: games}
}

func (s *Service) Fetch(userID string) ([]Match, error) {
	return s.repo.ListByUser(userID)
}

// EndMatch archives the active session for the given user and clears it.
// The winner is decided by net amount; equal net amounts record a tie
// (nil winner name). A session with no completed games cannot be archived.
// The session survives an insert failure so the caller can retry.
func (s *Service) EndMatch(userID string) (Match, error) {
	sess, ok := s.games.Snapshot()
	if !ok {
		return Match{}, game.ErrNoSession
	}
	totalGames := sess.CurrentGameNumber - 1
	if totalGames == 0 {
		return Match{}, ErrNoGames
	}

	var winner *string
	if leader := sess.Leader(); leader != 0 {
		name := sess.PlayerName(leader)
		winner = &name
	}

	created, err := time.Parse(time.RFC3339, sess.CreatedAt)
	if err != nil {
		created = time.Now()
	}

	m := Match{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Player1Name:        sess.Player1Name,
		Player2Name:        sess.Player2Name,
		Player1TotalPoints: sess.Player1TotalPoints,
		Player2TotalPoints: sess.Player2TotalPoints,
		Player1NetAmount:   sess.Player1NetAmount,
		Player2NetAmount:   sess.Player2NetAmount,
		TotalGames:         totalGames,
		DrawCount:          sess.DrawCount(),
		WinnerName:         winner,
		CreatedAt:          created,
		EndedAt:            time.Now(),
	}
	if err := s.repo.Insert(&m); err != nil {
		return Match{}, err
	}
	s.games.Reset()
	return m, nil
}

func (s *Service) Delete(userID, id string) error {
	return s.repo.Delete(id, userID)
}
