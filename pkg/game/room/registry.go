package room

import "github.com/zyedidia/generic/mapset"

// registry is a set that also remembers insertion order so every pass over a room
// visits entities in the same order.
type registry[T comparable] struct {
	members mapset.Set[T]
	order   []T
}

func newRegistry[T comparable]() *registry[T] {
	return &registry[T]{members: mapset.New[T]()}
}

func (r *registry[T]) Put(v T) {
	if r.members.Has(v) {
		return
	}
	r.members.Put(v)
	r.order = append(r.order, v)
}

// Remove drops v. The order slice is rebuilt rather than edited in place so a pass
// that is still ranging over the previous slice is unaffected.
func (r *registry[T]) Remove(v T) {
	if !r.members.Has(v) {
		return
	}
	r.members.Remove(v)
	order := make([]T, 0, len(r.order)-1)
	for _, o := range r.order {
		if o != v {
			order = append(order, o)
		}
	}
	r.order = order
}

func (r *registry[T]) Has(v T) bool {
	return r.members.Has(v)
}

func (r *registry[T]) Size() int {
	return r.members.Size()
}

// Items returns the members in insertion order. Callers must not modify the slice.
func (r *registry[T]) Items() []T {
	return r.order
}
