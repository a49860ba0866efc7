package midi

// learnSession tracks the single in-flight learn operation. The zero
// value is idle. It is owned by the consumer goroutine; no locking.
type learnSession struct {
	pending bool
	index   int
}

func (s *learnSession) start(i int) {
	s.pending = true
	s.index = i
}

func (s *learnSession) cancel() {
	s.pending = false
}

// mappingRemoved keeps the session consistent after the mapping at
// index i was deleted: a session on i is cancelled, a session on a
// later mapping follows it down as indices shift.
func (s *learnSession) mappingRemoved(i int) {
	if !s.pending {
		return
	}
	switch {
	case s.index == i:
		s.pending = false
	case s.index > i:
		s.index--
	}
}

// resolve scans the table in ascending CC order, consuming every set
// changed flag, and returns the first CC that reported activity. The
// full scan runs even after a hit so that control noise arriving in the
// same cycle is discarded rather than delivered as a parameter update
// on the next one.
func (s *learnSession) resolve(t *Table) (uint8, bool) {
	var hit uint8
	found := false
	for cc := 0; cc < NumControls; cc++ {
		if _, ok := t.Poll(uint8(cc)); ok && !found {
			hit = uint8(cc)
			found = true
		}
	}
	return hit, found
}
