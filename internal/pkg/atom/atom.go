package atom

import "sync"

// Atom is a process-wide value container with synchronous subscriber
// notification. Writes replace the whole value; partial updates go through
// Update so the read-modify-write happens under one lock.
type Atom[T any] struct {
	mu    sync.RWMutex
	value T

	subMu       sync.RWMutex
	nextID      int
	subscribers map[int]func(T)
	order       []int
}

// New creates an atom holding initial.
func New[T any](initial T) *Atom[T] {
	return &Atom[T]{
		value:       initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (a *Atom[T]) Get() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// Set replaces the value and notifies subscribers.
func (a *Atom[T]) Set(v T) {
	a.mu.Lock()
	a.value = v
	a.mu.Unlock()

	a.publish(v)
}

// Update applies fn to the current value and stores the result.
func (a *Atom[T]) Update(fn func(prev T) T) T {
	a.mu.Lock()
	next := fn(a.value)
	a.value = next
	a.mu.Unlock()

	a.publish(next)
	return next
}

// Subscribe registers fn for every subsequent write. The returned func
// removes the subscription and may be called more than once.
func (a *Atom[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	a.subMu.Lock()
	id := a.nextID
	a.nextID++
	a.subscribers[id] = fn
	a.order = append(a.order, id)
	a.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { a.unsubscribe(id) })
	}
}

func (a *Atom[T]) unsubscribe(id int) {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	if _, ok := a.subscribers[id]; !ok {
		return
	}
	delete(a.subscribers, id)
	for i, v := range a.order {
		if v == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *Atom[T]) publish(v T) {
	a.subMu.RLock()
	fns := make([]func(T), 0, len(a.order))
	for _, id := range a.order {
		fns = append(fns, a.subscribers[id])
	}
	a.subMu.RUnlock()

	// Callbacks run outside both locks so they may read or write the atom.
	for _, fn := range fns {
		fn(v)
	}
}
