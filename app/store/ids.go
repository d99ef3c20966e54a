package store

import "time"

// idGen makes job ids from the clock in milliseconds, kept strictly increasing.
// Ids stay compatible with timestamp ids of existing snapshots while two jobs added
// within the same millisecond still get distinct values.
type idGen struct {
	now  func() time.Time
	last int64
}

// observe moves the lower bound up to id, used on load so new ids never repeat old ones
func (g *idGen) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

func (g *idGen) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
