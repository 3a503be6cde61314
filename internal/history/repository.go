package history

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ListByUser returns the caller's matches, most recently ended first.
func (r *Repo) ListByUser(userID string) ([]Match, error) {
	var out []Match
	err := r.db.Where("user_id = ?", userID).Order("ended_at DESC").Find(&out).Error
	return out, err
}

func (r *Repo) Insert(m *Match) error { return r.db.Create(m).Error }

// Delete removes a match only when both id and owner match. Filtering by
// id alone would let one user delete another's rows.
func (r *Repo) Delete(id, userID string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&Match{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
