package history

import "time"

// Match is one archived match. Rows are append-only: created by the
// end-match operation, removed only by an explicit owner-scoped delete.
// WinnerName is nil when the match ended with equal net amounts.
type Match struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	UserID             string    `gorm:"index;not null" json:"user_id"`
	Player1Name        string    `json:"player1_name"`
	Player2Name        string    `json:"player2_name"`
	Player1TotalPoints int       `json:"player1_total_points"`
	Player2TotalPoints int       `json:"player2_total_points"`
	Player1NetAmount   int       `json:"player1_net_amount"`
	Player2NetAmount   int       `json:"player2_net_amount"`
	TotalGames         int       `json:"total_games"`
	DrawCount          int       `json:"draw_count"`
	WinnerName         *string   `json:"winner_name"`
	CreatedAt          time.Time `json:"created_at"`
	EndedAt            time.Time `json:"ended_at"`
}

func (Match) TableName() string { return "match_history" }
