package formbind

import "errors"

// errTestFailed only feeds the debug log for TestValue outcomes; boolean
// checks expose no error payload to callers.
var errTestFailed = errors.New("formbind: test reported failure")
