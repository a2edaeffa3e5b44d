package observable

import "sync"

// Watchable is the read-and-subscribe surface of a reactive value. It is the
// minimal capability consumers need to re-run work when a value changes;
// Value satisfies it, and adapters over external sources can satisfy it too.
type Watchable[T any] interface {
	// Get returns the current value.
	Get() T

	// Subscribe registers fn to run after every change. The returned cancel
	// function detaches the subscription and is safe to call more than once.
	Subscribe(fn func(T)) (cancel func())
}

// Source is the type-erased change feed of a reactive container. It allows
// heterogeneous containers to be listed as dependencies of a Computed value.
type Source interface {
	// Changed registers fn to run after every change, without the value.
	Changed(fn func()) (cancel func())
}

// Value is a thread-safe reactive container for a single value of type T.
// The zero value is not usable; create instances with New.
type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscription[T]
	nextID uint64
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores v and notifies subscribers in subscription order. Subscribers
// run synchronously on the calling goroutine, outside the internal lock.
// Set always notifies, even when v equals the current value, because
// downstream revalidation must observe every write.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	subs := make([]subscription[T], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Update applies transform to the current value and stores the result,
// notifying subscribers. The transform runs under the lock and must not
// call back into the container.
func (o *Value[T]) Update(transform func(T) T) {
	o.mu.Lock()
	o.value = transform(o.value)
	v := o.value
	subs := make([]subscription[T], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn to run after every write with the new value.
// The returned cancel function detaches the subscription; it is idempotent
// and safe to call concurrently with writes.
func (o *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[T]{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Changed registers fn to run after every write, discarding the value.
// It adapts Value to the Source interface for use as a Computed dependency.
func (o *Value[T]) Changed(fn func()) (cancel func()) {
	return o.Subscribe(func(T) { fn() })
}

// Computed derives a read-mostly Value from compute, re-running it whenever
// any of the listed sources change. Dependencies are explicit: Go has no
// implicit read tracking, so every container the computation reads must be
// passed as a source. The returned stop function detaches from all sources;
// the derived value keeps its last computed result afterwards.
func Computed[T any](compute func() T, deps ...Source) (*Value[T], func()) {
	derived := New(compute())

	cancels := make([]func(), 0, len(deps))
	for _, dep := range deps {
		cancels = append(cancels, dep.Changed(func() {
			derived.Set(compute())
		}))
	}

	return derived, func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}
