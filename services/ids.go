package services

import "time"

// IDGenerator hands out creation-time ids (Unix millis). Ids are strictly
// increasing, so two creations in the same millisecond still get distinct
// ids and a deleted id is never handed out again.
type IDGenerator struct {
	last int64
}

func (g *IDGenerator) Next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe raises the floor so ids already in use are skipped.
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
