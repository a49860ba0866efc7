package midi

import "sync/atomic"

// NumControls is the size of the CC identifier space (0-127).
const NumControls = 128

// Table holds the latest value received for each CC number.
//
// One writer (the capture callback) stores into a cell and sets its
// changed flag; one reader (the consumer's poll loop) swaps the flag and
// reads the value. Cells are independent of each other: a burst of
// writes to the same CC between two polls leaves only the last value
// visible. Intermediate values are dropped on purpose - a control
// surface only cares where the knob is now, and a single-slot cell keeps
// memory bounded no matter how fast the hardware sends.
//
// The zero value is ready to use.
type Table struct {
	values  [NumControls]atomic.Uint32
	changed [NumControls]atomic.Bool

	// Diagnostics, never read on the hot path.
	received atomic.Uint64
	dropped  atomic.Uint64
}

// Write records value as the latest for cc. Never blocks, never
// allocates. Out-of-range CC numbers are dropped.
//
// The value is stored before the flag is set, so a Poll that observes
// the flag always reads this write or a later one. Go atomics are
// sequentially consistent, which is stronger than the per-cell ordering
// this needs, but there is no weaker primitive to reach for.
func (t *Table) Write(cc, value uint8) {
	if cc >= NumControls {
		return
	}
	t.values[cc].Store(uint32(value))
	if t.changed[cc].Swap(true) {
		t.dropped.Add(1)
	}
	t.received.Add(1)
}

// Poll returns the latest value for cc if one arrived since the last
// Poll of that cell, clearing its changed flag. Never blocks.
func (t *Table) Poll(cc uint8) (uint8, bool) {
	if cc >= NumControls {
		return 0, false
	}
	if !t.changed[cc].Swap(false) {
		return 0, false
	}
	return uint8(t.values[cc].Load()), true
}

// TableStats reports how many events a Table has absorbed.
type TableStats struct {
	// Received counts every accepted Write.
	Received uint64
	// Dropped counts writes that overwrote a value no Poll ever saw.
	Dropped uint64
}

// Stats returns a snapshot of the table's counters.
func (t *Table) Stats() TableStats {
	return TableStats{
		Received: t.received.Load(),
		Dropped:  t.dropped.Load(),
	}
}
