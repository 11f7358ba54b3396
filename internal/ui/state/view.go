package state

// View enumerates the screens the client can display. ParticipantDetail is
// hierarchical-only: it is reached by drilling down from Participants and
// never appears in flat (tab) cycling.
type View int

const (
	ViewParticipants View = iota
	ViewParticipantDetail
	ViewTransfer
	ViewHistory
	ViewFuture
)

// FlatViews returns the tab ordering. ParticipantDetail is deliberately
// excluded.
func FlatViews() []View {
	return []View{ViewParticipants, ViewTransfer, ViewHistory, ViewFuture}
}

func (v View) Title() string {
	switch v {
	case ViewParticipants:
		return "Participants"
	case ViewParticipantDetail:
		return "Participant Details"
	case ViewTransfer:
		return "Transfer"
	case ViewHistory:
		return "History"
	case ViewFuture:
		return "Future"
	default:
		return "Unknown"
	}
}

// flatIndex returns v's position in the flat ordering, or 0 when v is not a
// flat view so cycling from ParticipantDetail behaves as if anchored at the
// first tab.
func flatIndex(v View) int {
	for i, fv := range FlatViews() {
		if fv == v {
			return i
		}
	}
	return 0
}

// NextView advances within the flat ordering, wrapping modulo its length.
func NextView(current View) View {
	views := FlatViews()
	return views[(flatIndex(current)+1)%len(views)]
}

// PrevView retreats within the flat ordering, wrapping modulo its length.
func PrevView(current View) View {
	views := FlatViews()
	return views[(flatIndex(current)+len(views)-1)%len(views)]
}

// GotoView jumps to the flat view at index; out-of-range indexes leave the
// current view unchanged.
func GotoView(current View, index int) View {
	views := FlatViews()
	if index < 0 || index >= len(views) {
		return current
	}
	return views[index]
}
