package combo

import "time"

// Session is the combo accumulated against the current tree.
// PendingReduction is always derived from Clicks.
type Session struct {
	Clicks     int
	Deadline   time.Time // zero when no flush is scheduled
	Generation uint64    // bumps on every schedule or cancel
}

// PendingReduction is the locally predicted, unconfirmed reduction in seconds
func (s Session) PendingReduction() int {
	return TimeReduction(s.Clicks)
}

// Scheduled reports whether a flush deadline is live
func (s Session) Scheduled() bool {
	return !s.Deadline.IsZero()
}

func (s *Session) schedule(at time.Time) {
	s.Deadline = at
	s.Generation++
}

func (s *Session) cancel() {
	if s.Deadline.IsZero() {
		return
	}
	s.Deadline = time.Time{}
	s.Generation++
}
