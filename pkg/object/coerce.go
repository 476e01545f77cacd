package object

import (
	"fmt"

	"github.com/funvibe/typekit/pkg/typesystem"
)

// FromNative wraps a native Go constant in its object representation.
func FromNative(v any) (Object, error) {
	switch v := v.(type) {
	case nil:
		return &Nil{}, nil
	case bool:
		return &Boolean{Value: v}, nil
	case int:
		return &Integer{Value: int64(v)}, nil
	case int64:
		return &Integer{Value: v}, nil
	case float64:
		return &Float{Value: v}, nil
	case complex128:
		return &Complex{Value: v}, nil
	case string:
		return &String{Value: v}, nil
	default:
		return nil, fmt.Errorf("no object representation for %T value", v)
	}
}

// CoerceObject checks v against t, routing scalar mismatches through the
// engine's widening/parsing table and re-wrapping the result.
func CoerceObject(v Object, t typesystem.Type, coerce bool) (Object, error) {
	if typesystem.Validate(v, t) {
		return v, nil
	}
	out, err := typesystem.ValidateOrCoerce(v.Native(), t, coerce)
	if err != nil {
		return nil, err
	}
	return FromNative(out)
}

// coerceAll lifts CoerceObject over container elements, failing fast.
func coerceAll(elems []Object, t typesystem.Type, coerce bool) ([]Object, error) {
	out := make([]Object, len(elems))
	for i, el := range elems {
		coerced, err := CoerceObject(el, t, coerce)
		if err != nil {
			return nil, err
		}
		out[i] = coerced
	}
	return out, nil
}

// resolveElemType returns the declared element type, or infers the minimal
// covering type from the elements when none was supplied. Empty untyped
// collections have no evidence to infer from.
func resolveElemType(elems []Object, declared typesystem.Type, kind string) (typesystem.Type, error) {
	if declared != nil {
		return declared, nil
	}
	if len(elems) == 0 {
		return nil, &typesystem.CannotInferFromEmptyError{Kind: kind}
	}
	types := make([]typesystem.Type, len(elems))
	for i, el := range elems {
		types[i] = el.RuntimeType()
	}
	return typesystem.Combine(types)
}
