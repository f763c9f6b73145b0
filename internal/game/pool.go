package game

// Handle is a stable entity identifier that survives pool compaction
type Handle uint32

// Entity carries the identity and liveness shared by every pooled entity
type Entity struct {
	ID    Handle `msgpack:"id"`
	Alive bool   `msgpack:"-"`
}

func (e *Entity) entity() *Entity { return e }

// Kill marks the entity dead; it is skipped for the rest of the tick and
// dropped at the next compaction
func (e *Entity) Kill() { e.Alive = false }

type pooled[T any] interface {
	*T
	entity() *Entity
}

// Pool stores one entity population contiguously. Dead entries stay in place
// until Compact runs at the tick boundary, so indices are stable within a tick.
type Pool[T any, P pooled[T]] struct {
	items []T
	index map[Handle]int
	next  Handle
}

// NewPool creates an empty pool
func NewPool[T any, P pooled[T]]() *Pool[T, P] {
	return &Pool[T, P]{index: make(map[Handle]int)}
}

// Spawn appends a live copy of v and returns its handle
func (p *Pool[T, P]) Spawn(v T) Handle {
	p.next++
	e := P(&v).entity()
	e.ID = p.next
	e.Alive = true
	p.items = append(p.items, v)
	p.index[e.ID] = len(p.items) - 1
	return e.ID
}

// Get returns the live entity for a handle, or nil if it is gone
func (p *Pool[T, P]) Get(h Handle) *T {
	i, ok := p.index[h]
	if !ok {
		return nil
	}
	item := &p.items[i]
	if !P(item).entity().Alive {
		return nil
	}
	return item
}

// Each calls fn for every live entity. fn must not spawn into the same pool.
func (p *Pool[T, P]) Each(fn func(*T)) {
	for i := range p.items {
		item := &p.items[i]
		if P(item).entity().Alive {
			fn(item)
		}
	}
}

// Len counts live entities
func (p *Pool[T, P]) Len() int {
	n := 0
	for i := range p.items {
		if P(&p.items[i]).entity().Alive {
			n++
		}
	}
	return n
}

// Compact drops dead entities in place, preserving order and handles
func (p *Pool[T, P]) Compact() {
	n := 0
	for i := range p.items {
		if P(&p.items[i]).entity().Alive {
			p.items[n] = p.items[i]
			n++
		}
	}
	clear(p.items[n:])
	p.items = p.items[:n]

	clear(p.index)
	for i := range p.items {
		p.index[P(&p.items[i]).entity().ID] = i
	}
}

// Clear removes every entity without resetting the handle counter
func (p *Pool[T, P]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
	clear(p.index)
}

// Snapshot copies the live entities
func (p *Pool[T, P]) Snapshot() []T {
	out := make([]T, 0, len(p.items))
	p.Each(func(item *T) {
		out = append(out, *item)
	})
	return out
}
