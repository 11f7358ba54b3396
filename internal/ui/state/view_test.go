package state

import "testing"

func TestNextViewCyclesModuloFlatLength(t *testing.T) {
	v := ViewTransfer
	for i := 0; i < len(FlatViews()); i++ {
		v = NextView(v)
	}
	if v != ViewTransfer {
		t.Fatalf("expected full cycle to return to Transfer, got %v", v)
	}
}

func TestPrevViewCyclesModuloFlatLength(t *testing.T) {
	v := ViewHistory
	for i := 0; i < len(FlatViews()); i++ {
		v = PrevView(v)
	}
	if v != ViewHistory {
		t.Fatalf("expected full reverse cycle to return to History, got %v", v)
	}
}

func TestFlatNavigationNeverLandsOnDetail(t *testing.T) {
	for _, start := range []View{ViewParticipants, ViewParticipantDetail, ViewTransfer, ViewHistory, ViewFuture} {
		v := start
		for i := 0; i < 16; i++ {
			v = NextView(v)
			if v == ViewParticipantDetail {
				t.Fatalf("next_view reached ParticipantDetail from %v", start)
			}
		}
		v = start
		for i := 0; i < 16; i++ {
			v = PrevView(v)
			if v == ViewParticipantDetail {
				t.Fatalf("prev_view reached ParticipantDetail from %v", start)
			}
		}
	}
	for idx := -2; idx < 8; idx++ {
		if GotoView(ViewParticipants, idx) == ViewParticipantDetail {
			t.Fatalf("goto_view(%d) reached ParticipantDetail", idx)
		}
	}
}

func TestNextPrevFromDetailAnchorAtFirstTab(t *testing.T) {
	if got := NextView(ViewParticipantDetail); got != ViewTransfer {
		t.Fatalf("expected Transfer after detail, got %v", got)
	}
	if got := PrevView(ViewParticipantDetail); got != ViewFuture {
		t.Fatalf("expected Future before detail, got %v", got)
	}
}

func TestGotoViewOutOfRangeIsNoOp(t *testing.T) {
	if got := GotoView(ViewHistory, 99); got != ViewHistory {
		t.Fatalf("expected out-of-range goto to keep History, got %v", got)
	}
	if got := GotoView(ViewHistory, -1); got != ViewHistory {
		t.Fatalf("expected negative goto to keep History, got %v", got)
	}
	if got := GotoView(ViewHistory, 1); got != ViewTransfer {
		t.Fatalf("expected index 1 to be Transfer, got %v", got)
	}
}
