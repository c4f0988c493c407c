package store

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open(in-memory) error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func TestSaveLoad(t *testing.T) {
	s := openMemory(t)

	r := &Record{
		ID:       "a1",
		Variant:  "classic",
		StartFEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Moves:    []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		FinalFEN: "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		Result:   "0-1",
		Cause:    "Checkmate",
	}
	testutil.AssertNoError(t, s.Save(r))
	testutil.AssertFalse(t, r.Created.IsZero(), "Created set on first save")
	testutil.AssertEqual(t, r.Updated, r.Created)

	got, err := s.Load("a1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Moves, r.Moves)
	testutil.AssertEqual(t, got.FinalFEN, r.FinalFEN)
	testutil.AssertTrue(t, got.Finished())
	testutil.AssertTrue(t, got.Created.Equal(r.Created))
}

func TestSaveReplacesAndKeepsCreated(t *testing.T) {
	s := openMemory(t)

	r := &Record{ID: "g", Result: "*"}
	testutil.AssertNoError(t, s.Save(r))
	created := r.Created

	r.Moves = []string{"e2e4"}
	r.Result = "1-0"
	testutil.AssertNoError(t, s.Save(r))
	testutil.AssertTrue(t, r.Created.Equal(created))

	got, err := s.Load("g")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Moves, []string{"e2e4"})
	testutil.AssertEqual(t, got.Result, "1-0")
}

func TestSaveRequiresID(t *testing.T) {
	s := openMemory(t)
	testutil.AssertErrorIs(t, s.Save(&Record{}), errors.ErrInvalidConfig)
}

func TestLoadMissing(t *testing.T) {
	s := openMemory(t)

	_, err := s.Load("nope")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
	testutil.AssertErrorIs(t, s.Delete("nope"), errors.ErrGameNotFound)
}

func TestListAndDelete(t *testing.T) {
	s := openMemory(t)

	for _, id := range []string{"c", "a", "b"} {
		testutil.AssertNoError(t, s.Save(&Record{ID: id, Result: "*"}))
	}

	records, err := s.List()
	testutil.AssertNoError(t, err)
	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	testutil.AssertEqual(t, ids, []string{"a", "b", "c"})

	testutil.AssertNoError(t, s.Delete("b"))
	records, err = s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 2)
}

func TestSummarize(t *testing.T) {
	s := openMemory(t)

	for id, result := range map[string]string{"1": "1-0", "2": "0-1", "3": "1/2-1/2", "4": "*", "5": "1-0"} {
		testutil.AssertNoError(t, s.Save(&Record{ID: id, Result: result}))
	}

	sum, err := s.Summarize()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sum, Summary{Games: 5, WhiteWins: 2, BlackWins: 1, Draws: 1, Unfinished: 1})
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Dir: dir, SyncWrites: true})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Save(&Record{ID: "persisted", Result: "*"}))
	testutil.AssertNoError(t, s.Close())

	s, err = Open(Options{Dir: dir})
	testutil.AssertNoError(t, err)
	defer s.Close()

	got, err := s.Load("persisted")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, got.Finished())
}
