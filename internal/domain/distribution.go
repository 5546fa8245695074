package domain

// AreaCount is one Distribution entry: an area's display name and the number
// of nodes resolved into it.
type AreaCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Distribution tallies nodes per municipal area. It remembers the order in
// which areas were first seen so downstream output is deterministic for a
// fixed traversal order.
type Distribution struct {
	counts map[string]*AreaCount
	order  []string
}

// NewDistribution returns an empty Distribution.
func NewDistribution() *Distribution {
	return &Distribution{counts: make(map[string]*AreaCount)}
}

// Add counts one node against the given area, inserting the area on first
// sight.
func (d *Distribution) Add(area AreaRecord) {
	if c, ok := d.counts[area.ID]; ok {
		c.Count++
		return
	}
	d.counts[area.ID] = &AreaCount{Name: area.Name, Count: 1}
	d.order = append(d.order, area.ID)
}

// Get returns the entry for an area id.
func (d *Distribution) Get(id string) (AreaCount, bool) {
	c, ok := d.counts[id]
	if !ok {
		return AreaCount{}, false
	}
	return *c, true
}

// AreaIDs returns the area ids in insertion order.
func (d *Distribution) AreaIDs() []string {
	ids := make([]string, len(d.order))
	copy(ids, d.order)
	return ids
}

// Len returns the number of distinct areas.
func (d *Distribution) Len() int {
	return len(d.counts)
}

// Total returns the sum of all counts, i.e. the number of resolved nodes.
func (d *Distribution) Total() int {
	total := 0
	for _, c := range d.counts {
		total += c.Count
	}
	return total
}
