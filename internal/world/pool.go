package world

import "iter"

// Pool is an entity collection with stable slot indices. Removal leaves a
// hole that Compact reclaims at the end of the tick, so a scan in progress
// never skips or revisits an element because of a removal.
type Pool[T any] struct {
	slots []*T
	live  int
}

// Add appends a value and returns a pointer to the stored copy.
func (p *Pool[T]) Add(v T) *T {
	e := &v
	p.slots = append(p.slots, e)
	p.live++
	return e
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int {
	return p.live
}

// Get returns the entry in slot i, or nil if it was removed.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return p.slots[i]
}

// Remove clears slot i. Removing an empty slot is a no-op.
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.slots) || p.slots[i] == nil {
		return
	}
	p.slots[i] = nil
	p.live--
}

// Clear removes every entry. Entries added afterwards are not visited by
// scans that started before the call.
func (p *Pool[T]) Clear() {
	clear(p.slots)
	p.live = 0
}

// All yields live entries in slot order. The range is fixed when the scan
// starts; entries removed mid-scan are skipped.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n := len(p.slots)
		for i := 0; i < n && i < len(p.slots); i++ {
			e := p.slots[i]
			if e == nil {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Retain removes every entry for which keep returns false.
func (p *Pool[T]) Retain(keep func(*T) bool) {
	for i, e := range p.All() {
		if !keep(e) {
			p.Remove(i)
		}
	}
}

// Compact drops empty slots. Call only between scans.
func (p *Pool[T]) Compact() {
	valid := p.slots[:0]
	for _, e := range p.slots {
		if e != nil {
			valid = append(valid, e)
		}
	}
	clear(p.slots[len(valid):])
	p.slots = valid
}

// Values returns copies of the live entries.
func (p *Pool[T]) Values() []T {
	out := make([]T, 0, p.live)
	for _, e := range p.All() {
		out = append(out, *e)
	}
	return out
}
