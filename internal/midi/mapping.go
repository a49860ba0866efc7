package midi

import "github.com/google/uuid"

// CCUnassigned marks a mapping with no control bound yet. Learn or
// SetMappingCC binds it; until then the mapping produces no updates.
const CCUnassigned uint8 = 0xFF

// Mapping binds one CC number to one parameter. The parameter is fixed
// for the mapping's lifetime; the CC is rebound by learn. ID is a
// stable identity for display purposes only - the public API addresses
// mappings by index, and callers must re-read indices after a mutation.
type Mapping struct {
	ID    string
	CC    uint8
	Param Param
}

// MappingRecord is the persisted form of one mapping. Parameters are
// stored by name so config files stay readable and survive reordering
// of the Param constants.
type MappingRecord struct {
	CC    uint8  `json:"cc"`
	Param string `json:"param"`
}

// AddMapping appends a mapping for param with no control assigned and
// returns its index.
func (c *Controller) AddMapping(param Param) int {
	c.mappings = append(c.mappings, Mapping{
		ID:    uuid.New().String(),
		CC:    CCUnassigned,
		Param: param,
	})
	return len(c.mappings) - 1
}

// SetMappingCC binds the mapping at index i to cc directly, bypassing
// learn. Out-of-range indices are ignored.
func (c *Controller) SetMappingCC(i int, cc uint8) {
	if i < 0 || i >= len(c.mappings) {
		return
	}
	c.mappings[i].CC = cc
}

// RemoveMapping deletes the mapping at index i; later indices shift
// down. A learn pending on this mapping is cancelled.
func (c *Controller) RemoveMapping(i int) {
	if i < 0 || i >= len(c.mappings) {
		return
	}
	c.mappings = append(c.mappings[:i], c.mappings[i+1:]...)
	c.learn.mappingRemoved(i)
}

// Mappings returns a copy of the mapping list. UI code that renders
// the list and also mutates it in the same pass must render from this
// snapshot and apply at most one deferred mutation afterwards.
func (c *Controller) Mappings() []Mapping {
	out := make([]Mapping, len(c.mappings))
	copy(out, c.mappings)
	return out
}

// UnmappedParams returns the parameters that no mapping uses yet, in
// display order. Feeds the host UI's add-mapping picker.
func (c *Controller) UnmappedParams() []Param {
	mapped := make(map[Param]bool, len(c.mappings))
	for _, m := range c.mappings {
		mapped[m.Param] = true
	}
	var out []Param
	for _, p := range Params {
		if !mapped[p] {
			out = append(out, p)
		}
	}
	return out
}

// ExportMappings returns the mapping list as persistable records.
func (c *Controller) ExportMappings() []MappingRecord {
	out := make([]MappingRecord, 0, len(c.mappings))
	for _, m := range c.mappings {
		out = append(out, MappingRecord{CC: m.CC, Param: m.Param.Name()})
	}
	return out
}

// ImportMappings replaces the mapping list with recs, preserving
// order. Records naming an unknown parameter are skipped with a
// warning so configs written by other builds keep loading. Any pending
// learn is cancelled.
func (c *Controller) ImportMappings(recs []MappingRecord) {
	c.learn.cancel()
	c.mappings = c.mappings[:0]
	for _, r := range recs {
		p, ok := ParamByName(r.Param)
		if !ok {
			c.log.Warn("skipping mapping for unknown parameter",
				"param", r.Param, "cc", r.CC)
			continue
		}
		c.mappings = append(c.mappings, Mapping{
			ID:    uuid.New().String(),
			CC:    r.CC,
			Param: p,
		})
	}
}
