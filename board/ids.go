package board

import "time"

// idGenerator hands out millisecond timestamps as task ids, bumping by one
// whenever the clock has not moved past the last id issued.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time, last int64) *idGenerator {
	return &idGenerator{now: now, last: last}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
