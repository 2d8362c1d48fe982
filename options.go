package kernel

// config holds a Scheduler's resolved hook set. Every hook defaults to a
// no-op, matching the weak-linked, empty-body-by-default contract of the
// optional hooks.
type config struct {
	critEnter func()
	critExit  func()
	beginHook func()
	endHook   func()
	idleHook  func()
	timestamp func() Ticks
	logger    Logger
}

// Option configures a [Scheduler] at construction time via [New].
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// WithCriticalSection installs the enter/exit pair the scheduler brackets
// every shared-state mutation with (ready-flag snapshot/clear, event
// binding, timer list mutation). Both must be safe to call recursively
// only to the depth the scheduler actually nests them (it never nests
// them); enter/exit are never called from ISR-variant operations, since
// ISR callers are expected to already exclude concurrent access by virtue
// of running in interrupt context.
func WithCriticalSection(enter, exit func()) Option {
	return optionFunc(func(cfg *config) {
		cfg.critEnter = enter
		cfg.critExit = exit
	})
}

// WithBeginHook installs a function called once at the start of every
// scheduling iteration, before the ready-flag scan begins.
func WithBeginHook(fn func()) Option {
	return optionFunc(func(cfg *config) { cfg.beginHook = fn })
}

// WithEndHook installs a function called once at the end of every
// scheduling iteration that found its task not ready, after the scan has
// advanced past it. An iteration that dispatches a task skips the end hook
// and restarts the scan from index 0.
func WithEndHook(fn func()) Option {
	return optionFunc(func(cfg *config) { cfg.endHook = fn })
}

// WithIdleHook installs a function called whenever a full scan of the
// task table completes with nothing ready to dispatch. This is the usual
// place to enter a low-power wait state until the next interrupt.
func WithIdleHook(fn func()) Option {
	return optionFunc(func(cfg *config) { cfg.idleHook = fn })
}

// WithTimestampSource installs a monotonic tick counter used only for the
// per-task MaxTick diagnostic. Without one, MaxTick always reads 0.
func WithTimestampSource(fn func() Ticks) Option {
	return optionFunc(func(cfg *config) { cfg.timestamp = fn })
}

// WithLogger installs a structured logger for the scheduler's internal
// diagnostic events (bind refusals, dropped posts, timer arm/fire/stop,
// dispatch, idle). Without one, logging is a no-op.
func WithLogger(l Logger) Option {
	return optionFunc(func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	})
}

func resolveOptions(opts []Option) *config {
	cfg := &config{
		critEnter: func() {},
		critExit:  func() {},
		beginHook: func() {},
		endHook:   func() {},
		idleHook:  func() {},
		timestamp: func() Ticks { return 0 },
		logger:    NoOpLogger{},
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.apply(cfg)
	}
	return cfg
}
