package scoring

// Selection tracks the criteria picked for the game currently being
// scored, the declared winner and the free-form "other" faan value.
// One selection lives per scoring flow; it is not safe for concurrent use.
type Selection struct {
	criteria    []Criterion
	winner      int
	otherPoints int
}

func NewSelection() *Selection { return &Selection{} }

// Toggle adds the criterion if absent and removes it if present.
// Removing the "other" criterion also zeroes the other-points value.
func (s *Selection) Toggle(c Criterion) {
	for i, sel := range s.criteria {
		if sel.ID == c.ID {
			s.criteria = append(s.criteria[:i], s.criteria[i+1:]...)
			if c.ID == OtherID {
				s.otherPoints = 0
			}
			return
		}
	}
	s.criteria = append(s.criteria, c)
}

func (s *Selection) IsSelected(id string) bool {
	for _, c := range s.criteria {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Selected returns the chosen criteria in selection order.
func (s *Selection) Selected() []Criterion {
	out := make([]Criterion, len(s.criteria))
	copy(out, s.criteria)
	return out
}

// SetWinner records the winning player (1 or 2). The caller passes a
// session-scoped player number; no session lookup happens here.
func (s *Selection) SetWinner(player int) { s.winner = player }

func (s *Selection) Winner() int { return s.winner }

// SetOtherPoints stores the wildcard faan value; negative input is
// coerced to zero rather than rejected.
func (s *Selection) SetOtherPoints(n int) {
	if n < 0 {
		n = 0
	}
	s.otherPoints = n
}

func (s *Selection) OtherPoints() int { return s.otherPoints }

// TotalPoints recomputes the faan total on every read: the sum of all
// selected criteria except "other", plus the other-points value when the
// "other" criterion is selected.
func (s *Selection) TotalPoints() int {
	total := 0
	other := false
	for _, c := range s.criteria {
		if c.ID == OtherID {
			other = true
			continue
		}
		total += c.Points
	}
	if other {
		total += s.otherPoints
	}
	return total
}

// Reset clears the selection back to its initial empty state.
func (s *Selection) Reset() {
	s.criteria = nil
	s.winner = 0
	s.otherPoints = 0
}
