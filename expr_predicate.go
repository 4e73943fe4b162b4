package possible

import (
	"time"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// exprPredicate filters Present payloads using github.com/expr-lang/expr.
type exprPredicate[T any] struct {
	program    *exprvm.Program
	expression string
	cfg        predicateConfig
}

// NewExprPredicate compiles expression into a Predicate backed by
// expr-lang/expr. The payload is bound as `value`; functions from a
// configured registry are callable by name.
func NewExprPredicate[T any](expression string, opts ...PredicateOption) (Predicate[T], error) {
	if expression == "" {
		return nil, wrapEvaluationError("expr", expression, errEmptyExpression)
	}
	cfg := applyPredicateOptions(opts)
	program, err := loadOrCompileExpr(expression, cfg)
	if err != nil {
		return nil, err
	}
	return &exprPredicate[T]{
		program:    program,
		expression: expression,
		cfg:        cfg,
	}, nil
}

func loadOrCompileExpr(expression string, cfg predicateConfig) (*exprvm.Program, error) {
	if cfg.cache != nil {
		if cached, ok := cfg.cache.Get(expression); ok {
			if program, ok := cached.(*exprvm.Program); ok {
				return program, nil
			}
		}
	}
	options := []exprlang.Option{
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	}
	if cfg.registry != nil {
		for _, name := range cfg.registry.Names() {
			fn := registryFunction(cfg.registry, name)
			options = append(options, exprlang.Function(name, fn))
		}
	}
	program, err := exprlang.Compile(expression, options...)
	if err != nil {
		return nil, wrapEvaluationError("expr", expression, err)
	}
	if cfg.cache != nil {
		cfg.cache.Set(expression, program)
	}
	return program, nil
}

func registryFunction(registry *FunctionRegistry, name string) func(...any) (any, error) {
	return func(arguments ...any) (any, error) {
		return registry.Call(name, arguments...)
	}
}

// Apply evaluates the expression against a Present payload, downgrading it to
// Null when the expression yields false. Null and Absent inputs return
// unchanged without evaluating anything.
func (p *exprPredicate[T]) Apply(v Possible[T]) (Possible[T], error) {
	if !v.IsPresent() {
		return v, nil
	}
	payload, _ := v.Get()
	env := map[string]any{"value": payload}
	start := time.Now()
	out, err := exprlang.Run(p.program, env)
	p.cfg.logger.LogEvaluation(EvaluationEvent{
		Engine:   "expr",
		Expr:     p.expression,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return v, wrapEvaluationError("expr", p.expression, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return v, wrapEvaluationError("expr", p.expression, errNonBoolean(out))
	}
	if keep {
		return v, nil
	}
	return Null[T](), nil
}

// Expression returns the source expression.
func (p *exprPredicate[T]) Expression() string {
	return p.expression
}
