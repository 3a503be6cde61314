package scoring

import "testing"

func mustCriterion(t *testing.T, id string) Criterion {
	t.Helper()
	c, ok := CriterionByID(id)
	if !ok {
		t.Fatalf("criterion %q missing from catalog", id)
	}
	return c
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range Catalog() {
		for _, c := range cat.Criteria {
			if seen[c.ID] {
				t.Errorf("duplicate criterion id %q", c.ID)
			}
			seen[c.ID] = true
			if c.Points < 0 {
				t.Errorf("criterion %q has negative points", c.ID)
			}
		}
	}
	if !seen[OtherID] {
		t.Errorf("catalog has no %q criterion", OtherID)
	}
}

func TestToggle_Involution(t *testing.T) {
	sel := NewSelection()
	a := mustCriterion(t, "all-pungs")
	b := mustCriterion(t, "self-drawn")

	sel.Toggle(a)
	sel.Toggle(b)
	before := sel.TotalPoints()

	sel.Toggle(a)
	sel.Toggle(a)
	if got := sel.TotalPoints(); got != before {
		t.Errorf("double toggle changed total: %d -> %d", before, got)
	}
	if !sel.IsSelected(a.ID) || !sel.IsSelected(b.ID) {
		t.Errorf("double toggle changed membership")
	}
}

// Toggling "other" off is deliberately not a pure involution: the removing
// toggle zeroes the other-points value even if it was nonzero.
func TestToggle_OtherResetsPoints(t *testing.T) {
	sel := NewSelection()
	other := mustCriterion(t, OtherID)

	sel.Toggle(other)
	sel.SetOtherPoints(7)
	assertEq(t, sel.TotalPoints(), 7)

	sel.Toggle(other) // remove
	assertEq(t, sel.OtherPoints(), 0)

	sel.Toggle(other) // re-add: points stay zero
	assertEq(t, sel.TotalPoints(), 0)
}

func TestTotalPoints_WithOther(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(mustCriterion(t, "all-pungs"))           // 3
	sel.Toggle(mustCriterion(t, "small-three-dragons")) // 5
	sel.Toggle(mustCriterion(t, OtherID))
	sel.SetOtherPoints(7)
	assertEq(t, sel.TotalPoints(), 15)
}

func TestTotalPoints_OtherNotSelected(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(mustCriterion(t, "all-pungs"))
	sel.SetOtherPoints(9) // meaningless without "other" selected
	assertEq(t, sel.TotalPoints(), 3)
}

func TestSetOtherPoints_NegativeCoercedToZero(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(mustCriterion(t, OtherID))
	sel.SetOtherPoints(-4)
	assertEq(t, sel.OtherPoints(), 0)
	assertEq(t, sel.TotalPoints(), 0)
}

func TestReset(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(mustCriterion(t, "pure-one-suit"))
	sel.SetWinner(2)
	sel.Toggle(mustCriterion(t, OtherID))
	sel.SetOtherPoints(3)

	sel.Reset()
	assertEq(t, sel.TotalPoints(), 0)
	assertEq(t, sel.Winner(), 0)
	assertEq(t, len(sel.Selected()), 0)
}

func TestSelectionFromIDs(t *testing.T) {
	sel, err := SelectionFromIDs([]string{"all-pungs", "mixed-one-suit", "all-pungs"}, 0)
	if err != nil {
		t.Fatalf("SelectionFromIDs: %v", err)
	}
	// duplicate collapses to one selection
	assertEq(t, len(sel.Selected()), 2)
	assertEq(t, sel.TotalPoints(), 6)

	if _, err := SelectionFromIDs([]string{"no-such-hand"}, 0); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
