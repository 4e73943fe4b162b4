package possible

import (
	"time"

	celgo "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

// celPredicate filters Present payloads using github.com/google/cel-go.
type celPredicate[T any] struct {
	bundle     *celProgram
	expression string
	cfg        predicateConfig
}

// NewCELPredicate compiles expression into a Predicate backed by cel-go. The
// payload is bound as `value`; registry functions are reachable through the
// `call("name", arg)` builtin since CEL requires declared signatures.
func NewCELPredicate[T any](expression string, opts ...PredicateOption) (Predicate[T], error) {
	if expression == "" {
		return nil, wrapEvaluationError("cel", expression, errEmptyExpression)
	}
	cfg := applyPredicateOptions(opts)
	bundle, err := loadOrCompileCEL(expression, cfg)
	if err != nil {
		return nil, err
	}
	return &celPredicate[T]{
		bundle:     bundle,
		expression: expression,
		cfg:        cfg,
	}, nil
}

func loadOrCompileCEL(expression string, cfg predicateConfig) (*celProgram, error) {
	if cfg.cache != nil {
		if cached, ok := cfg.cache.Get(expression); ok {
			if bundle, ok := cached.(*celProgram); ok {
				return bundle, nil
			}
		}
	}
	env, err := buildCELEnv(cfg.registry)
	if err != nil {
		return nil, wrapEvaluationError("cel", expression, err)
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, wrapEvaluationError("cel", expression, issues.Err())
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, wrapEvaluationError("cel", expression, issues.Err())
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, wrapEvaluationError("cel", expression, err)
	}
	bundle := &celProgram{env: env, program: prg}
	if cfg.cache != nil {
		cfg.cache.Set(expression, bundle)
	}
	return bundle, nil
}

func buildCELEnv(registry *FunctionRegistry) (*celgo.Env, error) {
	opts := []celgo.EnvOption{
		celgo.Variable("value", celgo.DynType),
	}
	if registry != nil {
		binding := celgo.FunctionBinding(callBinding(registry))
		opts = append(opts, celgo.Function("call",
			celgo.Overload("call_name",
				[]*celgo.Type{celgo.StringType}, celgo.DynType, binding),
			celgo.Overload("call_name_arg",
				[]*celgo.Type{celgo.StringType, celgo.DynType}, celgo.DynType, binding),
			celgo.Overload("call_name_arg_arg",
				[]*celgo.Type{celgo.StringType, celgo.DynType, celgo.DynType}, celgo.DynType, binding),
		))
	}
	return celgo.NewEnv(opts...)
}

func callBinding(registry *FunctionRegistry) func(...ref.Val) ref.Val {
	return func(values ...ref.Val) ref.Val {
		if len(values) == 0 {
			return types.NewErr("possible: call requires function name")
		}
		name, ok := values[0].Value().(string)
		if !ok {
			return types.NewErr("possible: call name must be string")
		}
		args := make([]any, 0, len(values)-1)
		for _, val := range values[1:] {
			args = append(args, val.Value())
		}
		result, err := registry.Call(name, args...)
		if err != nil {
			return types.NewErr("%s", err.Error())
		}
		if result == nil {
			return types.NullValue
		}
		return types.DefaultTypeAdapter.NativeToValue(result)
	}
}

// Apply evaluates the expression against a Present payload, downgrading it to
// Null when the expression yields false. Null and Absent inputs return
// unchanged without evaluating anything.
func (p *celPredicate[T]) Apply(v Possible[T]) (Possible[T], error) {
	if !v.IsPresent() {
		return v, nil
	}
	payload, _ := v.Get()
	start := time.Now()
	out, _, err := p.bundle.program.Eval(map[string]any{"value": payload})
	p.cfg.logger.LogEvaluation(EvaluationEvent{
		Engine:   "cel",
		Expr:     p.expression,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return v, wrapEvaluationError("cel", p.expression, err)
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return v, wrapEvaluationError("cel", p.expression, errNonBoolean(out.Value()))
	}
	if keep {
		return v, nil
	}
	return Null[T](), nil
}

// Expression returns the source expression.
func (p *celPredicate[T]) Expression() string {
	return p.expression
}
