// Package sanitizer provides value transformations applied by the validation
// engine's transform rules (trim, lower, upper, title, squish, truncate).
//
// Each transformation is a pure func(T) T so transformations compose into
// pipelines with Apply and Compose:
//
//	clean := sanitizer.Apply(input,
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.CollapseWhitespace)
//	clean := normalize(input)
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
