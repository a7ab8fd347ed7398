package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DiagnosticKind classifies a lookup-time soft failure.
type DiagnosticKind string

const (
	// KindGuardError is a guard expression that failed to parse or
	// evaluate; the owning rule was skipped.
	KindGuardError DiagnosticKind = "guard_error"

	// KindMissingArgument is a placeholder that referenced an argument the
	// caller did not supply.
	KindMissingArgument DiagnosticKind = "missing_argument"

	// KindArgumentLookup is a repository failure while recursively
	// translating a string argument; the raw argument text was substituted
	// instead.
	KindArgumentLookup DiagnosticKind = "argument_lookup_error"
)

// Diagnostic is one reported soft failure. Soft failures never abort a
// translate call; they are recovered locally and surfaced here.
type Diagnostic struct {
	ID         uuid.UUID
	Kind       DiagnosticKind
	Key        string
	Context    string
	Language   string
	Expression string
	Argument   int // 1-based placeholder index for missing arguments
	Err        error
	Time       time.Time
}

// Reporter receives lookup-time diagnostics. Implementations must be safe
// for concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// LogReporter logs diagnostics through slog. It is the default reporter.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a reporter writing to the given logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger.With("component", "engine.diagnostics")}
}

// Report implements Reporter.
func (r *LogReporter) Report(d Diagnostic) {
	attrs := []any{
		"id", d.ID.String(),
		"kind", string(d.Kind),
		"key", d.Key,
	}
	if d.Context != "" {
		attrs = append(attrs, "context", d.Context)
	}
	if d.Language != "" {
		attrs = append(attrs, "language", d.Language)
	}
	if d.Expression != "" {
		attrs = append(attrs, "expression", d.Expression)
	}
	if d.Argument > 0 {
		attrs = append(attrs, "argument", d.Argument)
	}
	if d.Err != nil {
		attrs = append(attrs, "error", d.Err)
	}
	r.logger.Warn("translation lookup diagnostic", attrs...)
}

func newDiagnostic(kind DiagnosticKind) Diagnostic {
	return Diagnostic{ID: uuid.New(), Kind: kind, Time: time.Now()}
}
