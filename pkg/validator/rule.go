package validator

import (
	"fmt"
	"strings"
)

// CheckFunc is a single named check. It receives the value flowing down the
// rule pipeline and the raw argument from the spec segment ("2" in "min:2"),
// and returns the possibly transformed value. A validation failure is
// reported as *ValidationError; any other error is treated as an engine
// fault and aborts the check.
type CheckFunc func(value any, arg string) (any, error)

// Rule is a compiled rule spec: an ordered pipeline of named checks,
// optionally tagged with a field name used in failure messages. Rules are
// immutable and safe to share between goroutines and engines; the checks a
// name resolves to are looked up at check time against the engine's table.
type Rule struct {
	spec  string
	field string
	steps []step
}

type step struct {
	name string
	arg  string
}

// Compile parses a pipe-separated rule spec such as
// "required|trim|min:2|max:10". Empty segments are rejected, as is a spec
// with no checks at all. Check names are resolved later, at check time, so
// a rule can be compiled before custom checks are registered.
func Compile(spec string) (*Rule, error) {
	segments := strings.Split(spec, "|")
	steps := make([]step, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, arg, _ := strings.Cut(segment, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: segment %q", ErrEmptyRule, segment)
		}
		steps = append(steps, step{name: name, arg: strings.TrimSpace(arg)})
	}

	if len(steps) == 0 {
		return nil, ErrEmptyRule
	}

	return &Rule{spec: spec, steps: steps}, nil
}

// MustCompile is like Compile but panics on a malformed spec. Intended for
// package-level rule variables.
func MustCompile(spec string) *Rule {
	rule, err := Compile(spec)
	if err != nil {
		panic(fmt.Sprintf("validator: MustCompile(%q): %v", spec, err))
	}
	return rule
}

// Named returns a copy of the rule whose failures are attributed to field.
// The original rule is untouched; the compiled pipeline is shared.
func (r *Rule) Named(field string) *Rule {
	clone := *r
	clone.field = field
	return &clone
}

// Field returns the field name failures are attributed to, or "" when the
// rule is unnamed.
func (r *Rule) Field() string {
	return r.field
}

// String returns the original spec the rule was compiled from.
func (r *Rule) String() string {
	return r.spec
}

// Schema maps field names to compiled rules for whole-object validation.
type Schema map[string]*Rule

// CompileSchema compiles a map of field name to rule spec.
func CompileSchema(specs map[string]string) (Schema, error) {
	schema := make(Schema, len(specs))
	for field, spec := range specs {
		rule, err := Compile(spec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		schema[field] = rule.Named(field)
	}
	return schema, nil
}

// MustCompileSchema is like CompileSchema but panics on a malformed spec.
func MustCompileSchema(specs map[string]string) Schema {
	schema, err := CompileSchema(specs)
	if err != nil {
		panic(fmt.Sprintf("validator: MustCompileSchema: %v", err))
	}
	return schema
}
