// Package observable provides small, thread-safe reactive containers used as
// the change-notification substrate for value binding.
//
// The package is centred around two container types. Value is a generic,
// mutex-guarded holder for a single value that notifies subscribers on every
// write. Object is a watched string-keyed map that notifies subscribers on
// any field mutation, which makes it suitable for form-shaped data where a
// change to any field must trigger whole-object processing.
//
// Subscribers are invoked synchronously on the writing goroutine, in
// subscription order, after the write has been applied. Every Subscribe call
// returns a cancel function that detaches the subscription; cancel is
// idempotent.
//
// # Usage
//
//	name := observable.New("John Doe")
//	cancel := name.Subscribe(func(v string) {
//	    fmt.Println("changed to", v)
//	})
//	defer cancel()
//
//	name.Set("Jane Doe") // subscriber runs before Set returns
//
// Derived values are built with Computed, which recomputes whenever any of
// its explicitly listed sources change:
//
//	upper, stop := observable.Computed(func() string {
//	    return strings.ToUpper(name.Get())
//	}, name)
//	defer stop()
//
// Debounce wraps a callback with a trailing-edge timer so bursts of changes
// collapse into a single invocation:
//
//	cancel := name.Subscribe(func(string) { revalidate() }, ...)
//	debounced := observable.Debounce(revalidate, 300*time.Millisecond)
//
// # Concurrency
//
// All containers are safe for concurrent use. Notification happens outside
// the container's internal lock, so subscribers may read the container or
// write other containers freely. Writing the same container from its own
// subscriber recurses and should be avoided.
package observable
