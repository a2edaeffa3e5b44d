package formbind

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formbind/pkg/config"
	"github.com/dmitrymomot/formbind/pkg/logger"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

// DebounceConfig carries the env-tunable binder defaults.
type DebounceConfig struct {
	// Interval is the delay used by WithDebounce when no explicit delay is
	// given.
	Interval time.Duration `env:"FORMBIND_DEBOUNCE_INTERVAL" envDefault:"1s"`
}

// Option configures a single binder call.
type Option func(*options)

type options struct {
	engine    Engine
	name      string
	delay     time.Duration
	debounce  bool
	async     bool
	immediate bool
	strict    bool
	log       *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{immediate: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEngine pins the binder to a specific engine, bypassing context and
// default resolution.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithName tags the rule so failures are attributed to the given field name
// in error messages.
func WithName(field string) Option {
	return func(o *options) { o.name = field }
}

// WithDebounce collapses change bursts: validation fires once, d after the
// burst's last change, using the value current at that moment. A
// non-positive d selects the configured default interval (1s, overridable
// via FORMBIND_DEBOUNCE_INTERVAL). Debouncing suppresses scheduling only;
// an engine call already dispatched is never recalled.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = true
		o.delay = d
	}
}

// WithAsync moves engine calls onto their own goroutines. Overlapping calls
// write results in completion order; see WithStrictOrdering.
func WithAsync() Option {
	return func(o *options) { o.async = true }
}

// WithoutImmediate suppresses the validation normally run at bind time; the
// first validation then happens on the first change.
func WithoutImmediate() Option {
	return func(o *options) { o.immediate = false }
}

// WithStrictOrdering discards asynchronous completions that were superseded
// by a later-started validation. Off by default to preserve the documented
// last-to-resolve-wins behavior.
func WithStrictOrdering() Option {
	return func(o *options) { o.strict = true }
}

// WithLogger enables debug logging of validation outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// resolveEngine applies the documented priority: explicit option, engine
// installed in the context, process-wide default.
func (o *options) resolveEngine(ctx context.Context) Engine {
	if o.engine != nil {
		return o.engine
	}
	if e, ok := EngineFrom(ctx); ok {
		return e
	}
	return validator.Default()
}

// resolveDelay returns the effective debounce interval.
func (o *options) resolveDelay() time.Duration {
	if o.delay > 0 {
		return o.delay
	}
	return defaultDebounceInterval()
}

func (o *options) named(rule *validator.Rule) *validator.Rule {
	if rule == nil || o.name == "" {
		return rule
	}
	return rule.Named(o.name)
}

func (o *options) logOutcome(component string, err error, elapsed time.Duration) {
	if o.log == nil {
		return
	}
	o.log.LogAttrs(context.Background(), slog.LevelDebug, "validation completed",
		logger.Component(component),
		logger.Field(o.name),
		logger.Valid(err == nil),
		logger.Duration(elapsed),
		logger.Error(err),
	)
}

func defaultDebounceInterval() time.Duration {
	var cfg DebounceConfig
	if err := config.Load(&cfg); err != nil || cfg.Interval <= 0 {
		return time.Second
	}
	return cfg.Interval
}
