package observable

import "sync"

// Object is a thread-safe watched map of field names to values. Any field
// mutation notifies subscribers with a snapshot of the whole map, which
// makes Object suitable for form-shaped data where whole-object processing
// must re-run on every field change.
//
// Tracking happens at the field level: mutations must go through Set or
// Delete. Mutating a nested value through a reference obtained from Get is
// not observed.
type Object struct {
	mu     sync.RWMutex
	fields map[string]any
	subs   []subscription[map[string]any]
	nextID uint64
}

// NewObject creates an Object initialized with a shallow copy of initial.
// A nil initial produces an empty object.
func NewObject(initial map[string]any) *Object {
	fields := make(map[string]any, len(initial))
	for k, v := range initial {
		fields[k] = v
	}
	return &Object{fields: fields}
}

// Get returns the value of field, or nil when the field is absent.
func (o *Object) Get(field string) any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.fields[field]
}

// Has reports whether field is present.
func (o *Object) Has(field string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.fields[field]
	return ok
}

// Len returns the number of fields.
func (o *Object) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.fields)
}

// Snapshot returns a shallow copy of the current fields.
func (o *Object) Snapshot() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.copyLocked()
}

// Set stores v under field and notifies subscribers with a snapshot.
func (o *Object) Set(field string, v any) {
	o.mu.Lock()
	o.fields[field] = v
	snapshot := o.copyLocked()
	subs := make([]subscription[map[string]any], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
}

// Replace swaps the whole field set for a shallow copy of fields and
// notifies subscribers once.
func (o *Object) Replace(fields map[string]any) {
	o.mu.Lock()
	o.fields = make(map[string]any, len(fields))
	for k, v := range fields {
		o.fields[k] = v
	}
	snapshot := o.copyLocked()
	subs := make([]subscription[map[string]any], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
}

// Delete removes field and notifies subscribers. Deleting an absent field
// is a no-op and does not notify.
func (o *Object) Delete(field string) {
	o.mu.Lock()
	if _, ok := o.fields[field]; !ok {
		o.mu.Unlock()
		return
	}
	delete(o.fields, field)
	snapshot := o.copyLocked()
	subs := make([]subscription[map[string]any], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(snapshot)
	}
}

// Subscribe registers fn to run after every mutation with a snapshot of the
// fields. The returned cancel function detaches the subscription.
func (o *Object) Subscribe(fn func(map[string]any)) (cancel func()) {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[map[string]any]{id: id, fn: fn})
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

// Changed registers fn to run after every mutation, discarding the snapshot.
// It adapts Object to the Source interface.
func (o *Object) Changed(fn func()) (cancel func()) {
	return o.Subscribe(func(map[string]any) { fn() })
}

func (o *Object) copyLocked() map[string]any {
	snapshot := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		snapshot[k] = v
	}
	return snapshot
}
