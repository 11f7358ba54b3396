package state

// Segment is one element of the breadcrumb trail. Context carries an entity
// id when the segment represents a drill-down target.
type Segment struct {
	Label   string
	View    View
	Context string
}

// DetailRef identifies the participant currently loaded into the detail view.
type DetailRef struct {
	ID   string
	Name string
}

// Breadcrumb derives the trail for the current view. It is a pure function
// of (current view, loaded detail): rebuilding with unchanged inputs yields
// an identical sequence, which keeps the trail from drifting out of sync
// with the view the way an incrementally mutated stack could.
func Breadcrumb(current View, detail *DetailRef) []Segment {
	switch current {
	case ViewParticipantDetail:
		trail := []Segment{{Label: ViewParticipants.Title(), View: ViewParticipants}}
		if detail != nil {
			trail = append(trail, Segment{Label: detail.Name, View: ViewParticipantDetail, Context: detail.ID})
		}
		return trail
	default:
		return []Segment{{Label: current.Title(), View: current}}
	}
}
