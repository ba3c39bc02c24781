package invaders

import "fmt"

// Handle is an opaque, generation-tagged reference to an entity.
// The zero Handle never refers to an entity.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

// String returns a compact form such as "#3v2".
func (h Handle) String() string {
	return fmt.Sprintf("#%dv%d", h.Index, h.Gen)
}

type slot struct {
	gen     uint32
	entity  *Entity // nil when the slot is free
	pending bool    // destroyed this tick, removed on Flush
}

// Store owns every entity of a session. Destruction is deferred: Destroy
// records a pending removal that iteration and lookups already honor, and
// Flush releases the slots at the end of the tick.
type Store struct {
	slots     []slot
	free      []uint32
	pending   []Handle
	live      int
	iterating int // Depth of nested Each calls
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots:   make([]slot, 0, 64),
		free:    make([]uint32, 0, 16),
		pending: make([]Handle, 0, 16),
	}
}

// Create stores a copy of e and returns its handle. Freed slots are not
// reused while an Each is running, so new entities always land past the
// iteration bound.
func (s *Store) Create(e Entity) Handle {
	ent := new(Entity)
	*ent = e
	s.live++

	if n := len(s.free); n > 0 && s.iterating == 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.gen++
		sl.entity = ent
		sl.pending = false
		return Handle{Index: idx, Gen: sl.gen}
	}

	s.slots = append(s.slots, slot{gen: 1, entity: ent})
	return Handle{Index: uint32(len(s.slots) - 1), Gen: 1}
}

func (s *Store) slot(h Handle) *slot {
	if h.IsZero() || int(h.Index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[h.Index]
	if sl.gen != h.Gen || sl.entity == nil {
		return nil
	}
	return sl
}

// Destroy marks the entity for removal. It returns true only for the first
// call on a live handle; repeated or stale calls are no-ops.
func (s *Store) Destroy(h Handle) bool {
	sl := s.slot(h)
	if sl == nil || sl.pending {
		return false
	}
	sl.pending = true
	s.pending = append(s.pending, h)
	s.live--
	return true
}

// Get returns the entity for h if it is live and not pending removal.
func (s *Store) Get(h Handle) (*Entity, bool) {
	sl := s.slot(h)
	if sl == nil || sl.pending {
		return nil, false
	}
	return sl.entity, true
}

// Alive reports whether h refers to a live entity not pending removal.
func (s *Store) Alive(h Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// Removed reports whether h is stale or already destroyed this tick.
func (s *Store) Removed(h Handle) bool {
	return !s.Alive(h)
}

// Each calls fn for every live entity carrying all attributes in mask, in
// slot order. Entities destroyed earlier in the same tick are skipped, and
// entities created while iterating are not visited by this call.
func (s *Store) Each(mask Mask, fn func(Handle, *Entity)) {
	s.iterating++
	defer func() { s.iterating-- }()

	n := len(s.slots)
	for i := 0; i < n; i++ {
		// Re-read the slot every step: fn may destroy later entities or
		// grow the slice.
		sl := &s.slots[i]
		if sl.entity == nil || sl.pending || !sl.entity.Has(mask) {
			continue
		}
		fn(Handle{Index: uint32(i), Gen: sl.gen}, sl.entity)
	}
}

// EachKind calls fn for every live entity of the given kind.
func (s *Store) EachKind(kind Kind, fn func(Handle, *Entity)) {
	s.Each(0, func(h Handle, e *Entity) {
		if e.Kind == kind {
			fn(h, e)
		}
	})
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	s.EachKind(kind, func(Handle, *Entity) { n++ })
	return n
}

// Len returns the number of live entities not pending removal.
func (s *Store) Len() int {
	return s.live
}

// Pending returns the number of removals waiting for Flush.
func (s *Store) Pending() int {
	return len(s.pending)
}

// Flush releases every pending removal, calling fn (if not nil) with each
// removed entity in the order it was destroyed. It returns the number of
// entities released.
func (s *Store) Flush(fn func(Handle, *Entity)) int {
	n := len(s.pending)
	for _, h := range s.pending {
		sl := &s.slots[h.Index]
		ent := sl.entity
		sl.entity = nil
		sl.pending = false
		s.free = append(s.free, h.Index)
		if fn != nil {
			fn(h, ent)
		}
	}
	s.pending = s.pending[:0]
	return n
}
