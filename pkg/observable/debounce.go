package observable

import (
	"sync"
	"time"
)

// Debounce wraps fn with a trailing-edge timer: each call resets the timer,
// and fn runs once, d after the most recent call. Calls that land inside the
// window are collapsed; only the burst's last trigger reaches fn. A timer
// already fired cannot be recalled, so fn may still run once after the
// wrapper is discarded.
//
// fn runs on a timer goroutine, not on the calling goroutine.
func Debounce(fn func(), d time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, fn)
	}
}
