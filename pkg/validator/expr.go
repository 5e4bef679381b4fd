package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
)

// Expr compiles a CEL expression into a validator. The candidate value is
// exposed to the expression as `value`, e.g. `value > 0 && value % 2 == 0`
// or `value.startsWith("img-")`. The expression must evaluate to a bool;
// this is checked at compile time so a bad expression fails during setup,
// never while the user is typing.
func Expr[V any](expr, message string) (Validator[V], error) {
	env, err := cel.NewEnv(cel.Variable("value", celTypeOf(reflect.TypeFor[V]())))
	if err != nil {
		return Validator[V]{}, errors.Join(ErrInvalidExpression, err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return Validator[V]{}, errors.Join(ErrInvalidExpression, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return Validator[V]{}, fmt.Errorf("%w: %q evaluates to %s, expected bool", ErrInvalidExpression, expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return Validator[V]{}, errors.Join(ErrInvalidExpression, err)
	}

	if message == "" {
		message = fmt.Sprintf("must satisfy %s", expr)
	}

	return Validator[V]{
		Check: func(value V) bool {
			out, _, err := prg.Eval(map[string]any{"value": value})
			if err != nil {
				return false
			}
			ok, isBool := out.Value().(bool)
			return isBool && ok
		},
		Error: ValidationError{
			Message:        message,
			TranslationKey: "validation.expression",
			TranslationValues: map[string]any{
				"expression": expr,
			},
		},
	}, nil
}

// MustExpr is like Expr but panics if the expression does not compile.
func MustExpr[V any](expr, message string) Validator[V] {
	v, err := Expr[V](expr, message)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

func celTypeOf(t reflect.Type) *cel.Type {
	switch t.Kind() {
	case reflect.String:
		return cel.StringType
	case reflect.Bool:
		return cel.BoolType
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cel.IntType
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cel.UintType
	case reflect.Float32, reflect.Float64:
		return cel.DoubleType
	default:
		return cel.DynType
	}
}
