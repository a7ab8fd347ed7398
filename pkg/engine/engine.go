// Package engine resolves an application text key plus runtime arguments
// into a localized output string. It selects among candidate translations
// using each rule's guard expression, then substitutes positional arguments
// into the winning translation.
//
// The engine is a pure computation over immutable inputs: the fallback
// chain is built once at construction and the rule repository is queried
// per call. Concurrent Translate calls are safe; the numeric format mode is
// the only runtime-settable state and is read atomically at the start of
// each call.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"glossa-hq/rosetta/pkg/langtag"
	"glossa-hq/rosetta/pkg/lexicon"
	"glossa-hq/rosetta/pkg/telemetry/metrics"
)

// Config carries the construction-time settings of an Engine. Invalid
// settings fail construction; they are never silently defaulted.
type Config struct {
	// Preferences is the caller's ordered language preference list.
	Preferences []string

	// FallbackLanguage terminates the fallback chain. Required.
	FallbackLanguage string

	// EnablePanic adds last-resort related-language tags to the chain.
	EnablePanic bool

	// NumericFormat is the initial numeric rendering mode.
	NumericFormat NumericFormat

	// StrictArguments renders missing arguments as a visible marker
	// instead of the empty string, and reports them.
	StrictArguments bool
}

// Engine is the translation rule selection engine. Construct with New; the
// zero value is not usable.
type Engine struct {
	repo      lexicon.Repository
	chain     langtag.Chain
	fallback  string
	strict    bool
	format    atomic.Int32
	overrides *OverrideRegistry
	reporter  Reporter
	logger    *slog.Logger
	metrics   *metrics.LookupMetrics
}

// Option customizes an Engine beyond its Config.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithReporter sets the diagnostics reporter.
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.LookupMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithOverrides installs a per-language behavior override registry.
func WithOverrides(r *OverrideRegistry) Option {
	return func(e *Engine) { e.overrides = r }
}

// New builds an engine over the given rule repository. The fallback chain
// is resolved once here and is immutable for the engine's lifetime.
func New(repo lexicon.Repository, cfg Config, opts ...Option) (*Engine, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, ErrNilRepository)
	}

	chain, err := langtag.Resolve(cfg.Preferences, cfg.EnablePanic, cfg.FallbackLanguage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	fallback, _ := langtag.Normalize(cfg.FallbackLanguage)

	e := &Engine{
		repo:     repo,
		chain:    chain,
		fallback: fallback,
		strict:   cfg.StrictArguments,
		logger:   slog.Default(),
	}
	e.format.Store(int32(cfg.NumericFormat))

	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = NewLogReporter(e.logger)
	}

	e.logger.Debug("translation engine ready",
		"chain", []string(chain),
		"fallback", fallback,
		"numeric_format", cfg.NumericFormat.String(),
	)
	return e, nil
}

// Chain returns a copy of the engine's fallback chain.
func (e *Engine) Chain() langtag.Chain {
	out := make(langtag.Chain, len(e.chain))
	copy(out, e.chain)
	return out
}

// NumericFormat returns the current numeric rendering mode.
func (e *Engine) NumericFormat() NumericFormat {
	return NumericFormat(e.format.Load())
}

// SetNumericFormat changes the numeric rendering mode. In-flight Translate
// calls keep the mode they snapshotted at entry.
func (e *Engine) SetNumericFormat(f NumericFormat) {
	e.format.Store(int32(f))
}

// Translate resolves key with no context.
//
// It never fails for missing data: when no candidate matches, the key text
// itself is returned (the synthesized identity rule). The only error case
// is the rule repository being unreachable.
func (e *Engine) Translate(ctx context.Context, key string, args ...any) (string, error) {
	return e.translate(ctx, "", key, args)
}

// ContextTranslate resolves key within a disambiguating context, so the same
// key can carry unrelated meanings in different parts of an application.
func (e *Engine) ContextTranslate(ctx context.Context, tctx, key string, args ...any) (string, error) {
	return e.translate(ctx, tctx, key, args)
}

func (e *Engine) translate(ctx context.Context, tctx, key string, args []any) (string, error) {
	start := time.Now()
	format := e.NumericFormat() // snapshot for the whole call

	rules, err := e.repo.Rules(ctx, lexicon.Query{
		Context:   tctx,
		Key:       key,
		Languages: e.chain,
	})
	if err != nil {
		return "", &LookupError{Key: key, Context: tctx, Cause: err}
	}

	selected := Select(rules, e.chain, args, func(r lexicon.Rule, guardErr error) {
		e.metrics.IncGuardError()
		d := newDiagnostic(KindGuardError)
		d.Key = key
		d.Context = tctx
		d.Language = r.Language
		d.Expression = r.Expression
		d.Err = guardErr
		e.reporter.Report(d)
	})

	outcome := metrics.OutcomeMatch
	if selected == nil {
		// The designed fallback path, not an error: return the key text.
		selected = &lexicon.Rule{
			Key:         key,
			Language:    e.fallback,
			Translation: key,
		}
		outcome = metrics.OutcomeFallback
	}

	text := e.render(ctx, tctx, *selected, args, format)
	e.metrics.ObserveLookup(outcome, time.Since(start))
	return text, nil
}

// render substitutes arguments into the selected rule's translation.
func (e *Engine) render(ctx context.Context, tctx string, rule lexicon.Rule, args []any, format NumericFormat) string {
	override := e.overrides.Lookup(e.chain)

	return render(rule.Translation, renderContext{
		args:   args,
		strict: e.strict,
		translate: func(s string) string {
			// Arguments may themselves be phrases needing localization.
			out, err := e.translate(ctx, tctx, s, nil)
			if err != nil {
				d := newDiagnostic(KindArgumentLookup)
				d.Key = s
				d.Context = tctx
				d.Err = err
				e.reporter.Report(d)
				return s
			}
			return out
		},
		format: func(n float64) string {
			if override != nil {
				if s, ok := override.FormatNumber(n, format); ok {
					return s
				}
			}
			return format.Apply(n)
		},
		onMissing: func(index int) {
			e.metrics.IncMissingArgument()
			d := newDiagnostic(KindMissingArgument)
			d.Key = rule.Key
			d.Context = tctx
			d.Language = rule.Language
			d.Argument = index
			e.reporter.Report(d)
		},
	})
}

// ParseYesNo interprets a localized affirmative or negative answer using
// the override registry, falling back to English conventions.
func (e *Engine) ParseYesNo(input string) (yes bool, ok bool) {
	if override := e.overrides.Lookup(e.chain); override != nil {
		if y, handled := override.ParseYesNo(input); handled {
			return y, true
		}
	}

	switch {
	case len(input) > 0 && (input[0] == 'y' || input[0] == 'Y'):
		return true, true
	case len(input) > 0 && (input[0] == 'n' || input[0] == 'N'):
		return false, true
	default:
		return false, false
	}
}
