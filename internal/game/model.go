package game

import (
	"github.com/kwlam/faantally/internal/scoring"
)

// Session is the state of one in-progress match between two named
// players. Timestamps are RFC3339 strings so the struct round-trips
// through the key-value store unchanged.
type Session struct {
	Player1Name        string `json:"player1_name"`
	Player2Name        string `json:"player2_name"`
	Player1TotalPoints int    `json:"player1_total_points"`
	Player2TotalPoints int    `json:"player2_total_points"`
	Player1WinCount    int    `json:"player1_win_count"`
	Player2WinCount    int    `json:"player2_win_count"`
	Player1NetAmount   int    `json:"player1_net_amount"`
	Player2NetAmount   int    `json:"player2_net_amount"`
	CurrentGameNumber  int    `json:"current_game_number"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// DrawCount is derived: games played minus games won by either player.
func (s Session) DrawCount() int {
	return s.CurrentGameNumber - 1 - s.Player1WinCount - s.Player2WinCount
}

// Leader ranks players by net amount, the economically meaningful order
// (raw faan totals ignore the payout cap). Returns 0 on a tie.
func (s Session) Leader() int {
	switch {
	case s.Player1NetAmount > s.Player2NetAmount:
		return 1
	case s.Player2NetAmount > s.Player1NetAmount:
		return 2
	default:
		return 0
	}
}

// PlayerName maps a player number to its name.
func (s Session) PlayerName(player int) string {
	if player == 1 {
		return s.Player1Name
	}
	return s.Player2Name
}

// Result is the audit record of one won game. Draws leave no record;
// they only show up in the derived draw count.
type Result struct {
	ID                 string              `json:"id"`
	GameNumber         int                 `json:"game_number"`
	WinnerPlayerNumber int                 `json:"winner_player_number"`
	WinnerName         string              `json:"winner_name"`
	Points             int                 `json:"points"`
	ScoringCriteria    []scoring.Criterion `json:"scoring_criteria"`
	Timestamp          string              `json:"timestamp"`
	Date               string              `json:"date"`
	Time               string              `json:"time"`
}
