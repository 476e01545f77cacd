package typesystem

import "fmt"

// TypedValue is implemented by runtime values that carry their own declared
// type. Inference returns the declared type directly without re-scanning the
// value's contents, which is both the fast path and the only correct answer
// for empty typed containers.
type TypedValue interface {
	RuntimeType() Type
}

// Infer derives a type expression from a runtime value, recursively.
// Untyped native collections are scanned and their element types combined
// into the minimal covering union; empty ones fail with
// CannotInferFromEmptyError because there is no evidence to work from.
func Infer(v any) (Type, error) {
	switch v := v.(type) {
	case TypedValue:
		return v.RuntimeType(), nil
	case nil:
		return NilType, nil
	case bool:
		return BoolType, nil
	case int, int32, int64:
		return IntType, nil
	case float32, float64:
		return FloatType, nil
	case complex64, complex128:
		return ComplexType, nil
	case string, []byte:
		// Text and byte sequences are atomic, never a sequence of characters.
		return StringType, nil
	case []any:
		if len(v) == 0 {
			return nil, &CannotInferFromEmptyError{Kind: "list"}
		}
		elem, err := inferAll(v)
		if err != nil {
			return nil, err
		}
		return TApp{Origin: ListClass, Args: []Type{elem}}, nil
	case map[any]any:
		if len(v) == 0 {
			return nil, &CannotInferFromEmptyError{Kind: "map"}
		}
		keys := make([]any, 0, len(v))
		vals := make([]any, 0, len(v))
		for k, val := range v {
			keys = append(keys, k)
			vals = append(vals, val)
		}
		keyType, err := inferAll(keys)
		if err != nil {
			return nil, err
		}
		valType, err := inferAll(vals)
		if err != nil {
			return nil, err
		}
		return TApp{Origin: DictClass, Args: []Type{keyType, valType}}, nil
	default:
		return nil, fmt.Errorf("cannot infer a type for %T value", v)
	}
}

// inferAll infers every element and combines the results.
func inferAll(values []any) (Type, error) {
	types := make([]Type, len(values))
	for i, v := range values {
		t, err := Infer(v)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return Combine(types)
}

// Combine folds a set of types into the minimal type covering all of them.
// A candidate is only added to the running union when it is not already a
// subtype of the accumulated result; a candidate that subsumes the result
// replaces it.
func Combine(types []Type) (Type, error) {
	if len(types) == 0 {
		return nil, &EmptyTypeSetError{}
	}
	result := types[0]
	for _, t := range types[1:] {
		if IsSubtype(t, result) {
			continue
		}
		if IsSubtype(result, t) {
			result = t
			continue
		}
		result = NormalizeUnion([]Type{result, t})
	}
	return result, nil
}

// atomicOf maps a constant to its atomic builtin type. Used for literal-set
// subtyping, where each constant must individually satisfy the supertype.
func atomicOf(v any) Type {
	switch v.(type) {
	case nil:
		return NilType
	case bool:
		return BoolType
	case int, int32, int64:
		return IntType
	case float32, float64:
		return FloatType
	case complex64, complex128:
		return ComplexType
	case string:
		return StringType
	default:
		return Any
	}
}
