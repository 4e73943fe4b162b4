package possible

import (
	"errors"
	"fmt"
	"time"
)

// Predicate is a compiled boolean expression applied to tri-state values with
// Filter semantics: a Present payload failing the expression downgrades to
// Null, while Null and Absent inputs pass through without evaluation. The
// payload is bound as `value` in the expression environment.
//
// Unlike Filter, Apply can fail: the expression may error at runtime or
// produce a non-boolean result. The input is returned unchanged alongside any
// error.
type Predicate[T any] interface {
	Apply(Possible[T]) (Possible[T], error)
	Expression() string
}

// ProgramCache stores compiled expression programs keyed by expression
// strings, letting predicates built from the same expression share one
// compilation.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// PredicateOption configures predicate construction.
type PredicateOption func(*predicateConfig)

type predicateConfig struct {
	cache    ProgramCache
	logger   EvaluationLogger
	registry *FunctionRegistry
}

// WithProgramCache wires a compiled-program cache into the predicate.
func WithProgramCache(cache ProgramCache) PredicateOption {
	return func(cfg *predicateConfig) {
		cfg.cache = cache
	}
}

// WithEvaluationLogger attaches a logger invoked after every evaluation.
func WithEvaluationLogger(logger EvaluationLogger) PredicateOption {
	return func(cfg *predicateConfig) {
		if logger == nil {
			cfg.logger = noopEvaluationLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithFunctionRegistry exposes custom functions to the expression.
func WithFunctionRegistry(registry *FunctionRegistry) PredicateOption {
	return func(cfg *predicateConfig) {
		if registry == nil {
			return
		}
		cfg.registry = registry.Clone()
	}
}

func applyPredicateOptions(opts []PredicateOption) predicateConfig {
	cfg := predicateConfig{logger: noopEvaluationLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = noopEvaluationLogger{}
	}
	return cfg
}

// EvaluationEvent describes one predicate evaluation for logging.
type EvaluationEvent struct {
	Engine   string
	Expr     string
	Duration time.Duration
	Err      error
}

// EvaluationLogger records predicate evaluations.
type EvaluationLogger interface {
	LogEvaluation(EvaluationEvent)
}

// EvaluationLoggerFunc adapts a function to EvaluationLogger.
type EvaluationLoggerFunc func(EvaluationEvent)

// LogEvaluation implements EvaluationLogger.
func (f EvaluationLoggerFunc) LogEvaluation(event EvaluationEvent) {
	if f != nil {
		f(event)
	}
}

type noopEvaluationLogger struct{}

func (noopEvaluationLogger) LogEvaluation(EvaluationEvent) {}

// EvaluationError captures predicate engine metadata alongside the
// originating error.
type EvaluationError struct {
	Engine string
	Expr   string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("possible: %s predicate %s: %v", e.Engine, describeExpression(e.Expr), e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluationError(engine, expr string, err error) error {
	if err == nil {
		return nil
	}
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvaluationError{Engine: engine, Expr: expr, Err: err}
}

var errEmptyExpression = errors.New("expression must not be empty")

func errNonBoolean(out any) error {
	return fmt.Errorf("expression returned %T, want bool", out)
}
