package midi

import "log/slog"

// Update is one scaled parameter change produced by Poll.
type Update struct {
	Param Param
	Value float32
}

// Controller owns the latest-value table, the mapping list and the
// learn session. HandleRawEvent is safe to call from the capture
// thread; every other method belongs to the single consumer goroutine
// (the table's per-cell atomics are the only state the two sides
// share).
type Controller struct {
	table    Table
	mappings []Mapping
	learn    learnSession
	log      *slog.Logger
}

// NewController returns an empty controller. A nil logger falls back
// to slog.Default().
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{log: logger}
}

// HandleRawEvent records a raw CC event from the capture callback.
// Out-of-range CC numbers are dropped and the value is masked to seven
// bits: a corrupt hardware byte must not disturb this path, so nothing
// here errors, blocks, allocates or logs.
func (c *Controller) HandleRawEvent(cc, value uint8) {
	if cc >= NumControls {
		return
	}
	c.table.Write(cc, value&0x7F)
}

// Poll drains changed cells. Call once per consumer cycle.
//
// While a learn is pending it resolves the learn instead and returns
// nothing: the first active CC in ascending order is bound to the
// pending mapping, and every other changed flag seen in the same scan
// is consumed and discarded, so stray knob movement mid-learn never
// leaks through as a parameter change.
//
// Otherwise it returns one update per mapping whose CC has a new value,
// scaled into the parameter's range, in mapping order.
func (c *Controller) Poll() []Update {
	if c.learn.pending {
		if cc, ok := c.learn.resolve(&c.table); ok {
			m := &c.mappings[c.learn.index]
			m.CC = cc
			c.learn.cancel()
			c.log.Info("learn: bound control", "cc", cc, "param", m.Param.Name())
		}
		return nil
	}

	var updates []Update
	for i := range c.mappings {
		m := &c.mappings[i]
		if m.CC >= NumControls {
			continue
		}
		if raw, ok := c.table.Poll(m.CC); ok {
			updates = append(updates, Update{Param: m.Param, Value: m.Param.Scale(raw)})
		}
	}
	return updates
}

// StartLearn arms learn mode for the mapping at index i: the next CC
// activity observed by Poll rebinds that mapping. Starting while a
// learn is already pending re-targets it. Out-of-range indices are
// ignored.
func (c *Controller) StartLearn(i int) {
	if i < 0 || i >= len(c.mappings) {
		return
	}
	c.learn.start(i)
}

// CancelLearn returns the learn session to idle.
func (c *Controller) CancelLearn() {
	c.learn.cancel()
}

// Learning reports the index of the mapping currently being learned.
func (c *Controller) Learning() (int, bool) {
	if !c.learn.pending {
		return 0, false
	}
	return c.learn.index, true
}

// Stats exposes the table's event counters for display.
func (c *Controller) Stats() TableStats {
	return c.table.Stats()
}
