package game

import (
	"errors"
	"testing"

	"github.com/kwlam/faantally/internal/scoring"
	"github.com/kwlam/faantally/internal/storage"
)

type memStore struct{ m map[string]string }

func newMemStore() *memStore { return &memStore{m: map[string]string{}} }

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}
func (s *memStore) Set(key, value string) error { s.m[key] = value; return nil }
func (s *memStore) Remove(key string) error     { delete(s.m, key); return nil }

// brokenStore fails every operation; the service must keep working on
// in-memory state.
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (brokenStore) Set(string, string) error         { return errors.New("disk gone") }
func (brokenStore) Remove(string) error              { return errors.New("disk gone") }

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	return NewService(store, scoring.Classic), store
}

func criteria(t *testing.T, ids ...string) []scoring.Criterion {
	t.Helper()
	out := make([]scoring.Criterion, 0, len(ids))
	for _, id := range ids {
		c, ok := scoring.CriterionByID(id)
		if !ok {
			t.Fatalf("criterion %q missing", id)
		}
		out = append(out, c)
	}
	return out
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	cases := []struct{ p1, p2 string }{
		{"", "Bob"},
		{"Alice", ""},
		{"   ", "Bob"},
		{"Alice", "Alice"},
		{" Alice ", "Alice"},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.p1, tc.p2); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%q, %q): want ErrValidation, got %v", tc.p1, tc.p2, err)
		}
	}
	if _, ok := svc.Snapshot(); ok {
		t.Fatalf("failed create must not leave a session behind")
	}
}

func TestCreate_FreshSession(t *testing.T) {
	svc, _ := newTestService()
	sess, err := svc.Create(" Alice ", "Bob")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.Player1Name != "Alice" || sess.Player2Name != "Bob" {
		t.Errorf("names not trimmed/stored: %+v", sess)
	}
	if sess.CurrentGameNumber != 1 || sess.Player1NetAmount != 0 || sess.Player2WinCount != 0 {
		t.Errorf("counters not zeroed: %+v", sess)
	}
}

func TestRecordWin_FirstGame(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}

	sess, err := svc.RecordWin(1, 5, criteria(t, "small-three-dragons"))
	if err != nil {
		t.Fatalf("RecordWin: %v", err)
	}
	assertEq(t, sess.CurrentGameNumber, 2)
	assertEq(t, sess.Player1WinCount, 1)
	assertEq(t, sess.Player1TotalPoints, 5)
	assertEq(t, sess.Player1NetAmount, scoring.Classic.Payout(5))
	assertEq(t, sess.Player2NetAmount, -scoring.Classic.Payout(5))

	results := svc.Results()
	assertEq(t, len(results), 1)
	assertEq(t, results[0].GameNumber, 1)
	assertEq(t, results[0].WinnerName, "Alice")
	assertEq(t, results[0].Points, 5)
	if results[0].ID == "" {
		t.Errorf("result id not assigned")
	}
}

func TestRecordWin_ZeroSumInvariant(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	plays := []struct{ winner, points int }{
		{1, 0}, {2, 3}, {1, 8}, {2, 13}, {1, 2}, {2, 7},
	}
	for _, p := range plays {
		sess, err := svc.RecordWin(p.winner, p.points, nil)
		if err != nil {
			t.Fatalf("RecordWin(%d, %d): %v", p.winner, p.points, err)
		}
		if sess.Player1NetAmount+sess.Player2NetAmount != 0 {
			t.Fatalf("net amounts not zero-sum after win(%d, %d): %+v", p.winner, p.points, sess)
		}
	}
}

func TestRecordWin_Validation(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.RecordWin(1, 5, nil); !errors.Is(err, ErrNoSession) {
		t.Errorf("want ErrNoSession, got %v", err)
	}

	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(3, 5, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("winner 3: want ErrValidation, got %v", err)
	}
	if _, err := svc.RecordWin(1, -1, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("negative points: want ErrValidation, got %v", err)
	}
}

func TestRecordDraw(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.RecordDraw(); !errors.Is(err, ErrNoSession) {
		t.Errorf("want ErrNoSession, got %v", err)
	}

	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	before, _ := svc.Snapshot()
	sess, err := svc.RecordDraw()
	if err != nil {
		t.Fatalf("RecordDraw: %v", err)
	}
	assertEq(t, sess.CurrentGameNumber, before.CurrentGameNumber+1)
	assertEq(t, sess.Player1TotalPoints, before.Player1TotalPoints)
	assertEq(t, sess.Player1WinCount, before.Player1WinCount)
	assertEq(t, sess.Player2WinCount, before.Player2WinCount)
	assertEq(t, sess.Player1NetAmount, before.Player1NetAmount)
	assertEq(t, sess.Player2NetAmount, before.Player2NetAmount)
	assertEq(t, sess.DrawCount(), 1)
	// draws leave no audit record
	assertEq(t, len(svc.Results()), 0)
}

func TestStartOver(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(2, 8, nil); err != nil {
		t.Fatal(err)
	}

	sess, err := svc.StartOver()
	if err != nil {
		t.Fatalf("StartOver: %v", err)
	}
	assertEq(t, sess.Player1Name, "Alice")
	assertEq(t, sess.Player2Name, "Bob")
	assertEq(t, sess.CurrentGameNumber, 1)
	assertEq(t, sess.Player2TotalPoints, 0)
	assertEq(t, sess.Player2WinCount, 0)
	assertEq(t, sess.Player1NetAmount, 0)
	assertEq(t, sess.Player2NetAmount, 0)
	assertEq(t, len(svc.Results()), 0)
}

func TestReset(t *testing.T) {
	svc, store := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(1, 3, nil); err != nil {
		t.Fatal(err)
	}

	svc.Reset()
	if _, ok := svc.Snapshot(); ok {
		t.Fatalf("session survived reset")
	}
	if _, ok := store.m[storage.KeyGameSession]; ok {
		t.Errorf("session slot not cleared")
	}
	if _, ok := store.m[storage.KeyGameResults]; ok {
		t.Errorf("results slot not cleared")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, scoring.Classic)
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(1, 8, criteria(t, "big-three-dragons")); err != nil {
		t.Fatal(err)
	}
	want, _ := svc.Snapshot()

	// fresh process over the same store
	svc2 := NewService(store, scoring.Classic)
	svc2.Load()
	got, ok := svc2.Snapshot()
	if !ok {
		t.Fatalf("session not restored")
	}
	assertEq(t, got, want)
	results := svc2.Results()
	assertEq(t, len(results), 1)
	assertEq(t, results[0].Points, 8)
}

func TestLoad_EmptyStoreIsNotAnError(t *testing.T) {
	svc, _ := newTestService()
	svc.Load()
	if _, ok := svc.Snapshot(); ok {
		t.Fatalf("empty store produced a session")
	}
}

func TestPersistenceFailure_FailSoft(t *testing.T) {
	svc := NewService(brokenStore{}, scoring.Classic)
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatalf("Create must survive storage failure: %v", err)
	}
	sess, err := svc.RecordWin(1, 5, nil)
	if err != nil {
		t.Fatalf("RecordWin must survive storage failure: %v", err)
	}
	assertEq(t, sess.Player1WinCount, 1)
	svc.Reset()
	if _, ok := svc.Snapshot(); ok {
		t.Fatalf("reset must clear memory even when the store fails")
	}
}

func TestEndToEndScenario(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(1, 8, criteria(t, "all-pungs-self-drawn")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(2, 3, criteria(t, "all-pungs")); err != nil {
		t.Fatal(err)
	}
	sess, err := svc.RecordDraw()
	if err != nil {
		t.Fatal(err)
	}

	assertEq(t, sess.CurrentGameNumber, 4)
	assertEq(t, sess.Player1WinCount, 1)
	assertEq(t, sess.Player2WinCount, 1)
	assertEq(t, sess.DrawCount(), 1)
	// 8 faan hits the cap, 3 faan pays the base: Alice leads on net amount
	assertEq(t, sess.Player1NetAmount, 1024-32)
	assertEq(t, sess.Leader(), 1)
}

func TestLeader_TieIsZero(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create("Alice", "Bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordWin(1, 4, nil); err != nil {
		t.Fatal(err)
	}
	sess, err := svc.RecordWin(2, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, sess.Leader(), 0)
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
