package chess

import "testing"

func TestMoveKindPredicates(t *testing.T) {
	tests := []struct {
		kind      MoveKind
		capture   bool
		promotion bool
	}{
		{NoCapture, false, false},
		{Capture, true, false},
		{Promotion, false, true},
		{CaptureWithPromotion, true, true},
		{EnPassant, true, false},
		{LongPawnMove, false, false},
		{Castle, false, false},
		{Placement, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsCapture(); got != tt.capture {
				t.Errorf("IsCapture() = %v; want %v", got, tt.capture)
			}
			if got := tt.kind.IsPromotion(); got != tt.promotion {
				t.Errorf("IsPromotion() = %v; want %v", got, tt.promotion)
			}
		})
	}

	if MoveKind(0).String() != "Unknown" {
		t.Errorf("MoveKind(0).String() = %q; want Unknown", MoveKind(0).String())
	}
}

func TestMoveList(t *testing.T) {
	var l MoveList
	l.Add(Pos(4, 2), NoCapture)
	l.Add(Pos(4, 3), LongPawnMove)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", l.Len())
	}
	if got := l.At(1); got.To != Pos(4, 3) || got.Kind != LongPawnMove {
		t.Errorf("At(1) = %v; want e4(LongPawnMove)", got)
	}
	if m, ok := l.Find(Pos(4, 3)); !ok || m.Kind != LongPawnMove {
		t.Errorf("Find(e4) = (%v, %v); want LongPawnMove", m, ok)
	}
	if _, ok := l.Find(Pos(4, 4)); ok {
		t.Error("Find(e5) found a move that was never added")
	}

	moves := l.Moves()
	moves[0].Kind = Capture
	if l.At(0).Kind != NoCapture {
		t.Error("Moves() returned a slice aliasing the list")
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", l.Len())
	}
}

func TestMoveListOverflowPanics(t *testing.T) {
	var l MoveList
	for i := 0; i < MaxMoves; i++ {
		l.Add(Pos(i%BoardSize, i/BoardSize), NoCapture)
	}

	defer func() {
		if recover() == nil {
			t.Error("Add beyond MaxMoves did not panic")
		}
	}()
	l.Add(Pos(0, 0), NoCapture)
}

func TestMoveListAtOutOfRangePanics(t *testing.T) {
	var l MoveList
	defer func() {
		if recover() == nil {
			t.Error("At(0) on an empty list did not panic")
		}
	}()
	l.At(0)
}

func TestCheckingPiecesSaturates(t *testing.T) {
	var c CheckingPieces
	c.Add(Pos(0, 0), Rook)
	c.Add(Pos(1, 1), Bishop)
	if c.Overflowed() {
		t.Error("Overflowed() = true at capacity; want false")
	}

	c.Add(Pos(2, 2), Knight)
	if !c.Overflowed() {
		t.Error("Overflowed() = false after a third checker; want true")
	}
	if c.Len() != MaxCheckers {
		t.Errorf("Len() = %d; want %d", c.Len(), MaxCheckers)
	}
	if got := c.Checkers(); len(got) != 2 || got[1] != (Checker{Pos: Pos(1, 1), Type: Bishop}) {
		t.Errorf("Checkers() = %v", got)
	}

	c.Clear()
	if c.Len() != 0 || c.Overflowed() {
		t.Error("Clear() did not reset the set")
	}
}

func TestCastlingRights(t *testing.T) {
	r := AllCastlingRights()
	if !r.Any() {
		t.Fatal("AllCastlingRights().Any() = false")
	}

	r.Revoke(White, KingSide)
	if r.Has(White, KingSide) {
		t.Error("white king side still held after Revoke")
	}
	if !r.Has(White, QueenSide) || !r.Has(Black, KingSide) || !r.Has(Black, QueenSide) {
		t.Errorf("Revoke touched other rights: %+v", r)
	}

	r.RevokeAll(Black)
	if r.Has(Black, KingSide) || r.Has(Black, QueenSide) {
		t.Errorf("RevokeAll(Black) left rights: %+v", r)
	}

	r.Revoke(White, QueenSide)
	if r.Any() {
		t.Errorf("Any() = true with every right revoked: %+v", r)
	}
}

func TestCastlingOrigins(t *testing.T) {
	o := ClassicOrigins()
	if o.KingFile != 4 || o.RookFile(KingSide) != 7 || o.RookFile(QueenSide) != 0 {
		t.Errorf("ClassicOrigins() = %+v", o)
	}
}

func TestEnPassantWindow(t *testing.T) {
	w := EnPassantWindow{Target: Pos(4, 2), Ply: 4}

	tests := []struct {
		ply  int
		want bool
	}{
		{4, false},
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := w.ActiveAt(tt.ply); got != tt.want {
			t.Errorf("ActiveAt(%d) = %v; want %v", tt.ply, got, tt.want)
		}
	}

	closed := EnPassantWindow{Target: NoPosition, Ply: -1}
	if closed.ActiveAt(0) {
		t.Error("window without a target is active")
	}
}

func TestGameResult(t *testing.T) {
	if (GameResult{}).Over() {
		t.Error("zero GameResult is over")
	}
	r := GameResult{Status: WinFor(Black), Cause: Checkmate}
	if !r.Over() || r.Status != BlackWins {
		t.Errorf("GameResult = %+v; want black win", r)
	}
	if WinFor(White).Score() != "1-0" || Draw.Score() != "1/2-1/2" || InProgress.Score() != "*" || BlackWins.Score() != "0-1" {
		t.Error("Score() strings wrong")
	}
	if Stalemate.String() != "Stalemate" || Cause(99).String() != "Unknown" {
		t.Errorf("Cause strings: %s, %s", Stalemate, Cause(99))
	}
}
