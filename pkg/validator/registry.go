package validator

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]CheckFunc{}
)

// Register adds a named check to the process-wide table, overwriting any
// previous registration under the same name, built-ins included. A Validator
// snapshots the table at construction, so Register must run before New for
// the instance to see the check; instances already constructed are
// unaffected.
func Register(name string, fn CheckFunc) {
	if name == "" || fn == nil {
		return
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// snapshotChecks merges built-in and registered checks into a fresh table
// owned by a single Validator.
func snapshotChecks() map[string]CheckFunc {
	registryMu.RLock()
	defer registryMu.RUnlock()

	checks := make(map[string]CheckFunc, len(builtins)+len(registry))
	for name, fn := range builtins {
		checks[name] = fn
	}
	for name, fn := range registry {
		checks[name] = fn
	}
	return checks
}
