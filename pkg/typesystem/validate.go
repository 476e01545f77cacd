package typesystem

import (
	"fmt"
	"strconv"
	"sync"
)

// ValidatorFunc checks a value against one instantiation of the class it was
// registered for. Container implementations register one per template so that
// an already-typed value is checked nominally in O(1) via its declared
// element type instead of being re-scanned.
type ValidatorFunc func(v any, t TApp) bool

var (
	validatorMu sync.RWMutex
	validators  = map[*Class]ValidatorFunc{}
)

// RegisterValidator installs the validation predicate for a generic origin.
func RegisterValidator(c *Class, fn ValidatorFunc) {
	validatorMu.Lock()
	defer validatorMu.Unlock()
	validators[c] = fn
}

func validatorFor(c *Class) (ValidatorFunc, bool) {
	validatorMu.RLock()
	defer validatorMu.RUnlock()
	fn, ok := validators[c]
	return fn, ok
}

// NativeValue is implemented by wrapped scalars that can expose the underlying
// constant, so they participate in literal matching and coercion.
type NativeValue interface {
	Native() any
}

func nativeOf(v any) any {
	if nv, ok := v.(NativeValue); ok {
		return nv.Native()
	}
	return v
}

// Validate structurally checks a value against a type expression.
func Validate(v any, t Type) bool {
	switch t := t.(type) {
	case TAny:
		return true
	case TUnion:
		for _, m := range t.Types {
			if Validate(v, m) {
				return true
			}
		}
		return false
	case TLiteral:
		return t.Contains(nativeOf(v))
	case TCon:
		// Bare nominal target: native collections only need the origin check.
		switch v.(type) {
		case []any:
			return ListClass.IsSubclassOf(t.Class)
		case map[any]any:
			return DictClass.IsSubclassOf(t.Class)
		}
		vt, err := Infer(v)
		if err != nil {
			return false
		}
		return IsSubtype(vt, t)
	case TTuple:
		if tv, ok := v.(TypedValue); ok {
			return IsSubtype(tv.RuntimeType(), t)
		}
		elems, ok := v.([]any)
		if !ok || len(elems) != len(t.Elements) {
			return false
		}
		for i, el := range elems {
			if !Validate(el, t.Elements[i]) {
				return false
			}
		}
		return true
	case TVariadic:
		if tv, ok := v.(TypedValue); ok {
			return IsSubtype(tv.RuntimeType(), t)
		}
		elems, ok := v.([]any)
		if !ok {
			return false
		}
		for _, el := range elems {
			if !Validate(el, t.Element) {
				return false
			}
		}
		return true
	case TApp:
		if fn, ok := validatorFor(t.Origin); ok && fn(v, t) {
			return true
		}
		if tv, ok := v.(TypedValue); ok {
			return IsSubtype(tv.RuntimeType(), t)
		}
		// Unregistered native shapes validate every contained element.
		switch v := v.(type) {
		case []any:
			if !ListClass.IsSubclassOf(t.Origin) || len(t.Args) != 1 {
				return false
			}
			for _, el := range v {
				if !Validate(el, t.Args[0]) {
					return false
				}
			}
			return true
		case map[any]any:
			if !DictClass.IsSubclassOf(t.Origin) || len(t.Args) != 2 {
				return false
			}
			for k, val := range v {
				if !Validate(k, t.Args[0]) || !Validate(val, t.Args[1]) {
					return false
				}
			}
			return true
		}
		return false
	}
	return false
}

// ValidateOrCoerce returns v unchanged when it validates. Otherwise it applies
// the fixed table of safe widenings (these apply regardless of coerce):
//
//	bool → Int
//	bool, Int → Float
//	bool, Int, Float → Complex
//	bool, Int, Float, Complex → String
//
// and, only when coerce is true, textual narrowings String → Int/Float/Complex
// through the target's parser. Every remaining mismatch, including a failed
// parse, reports TypeMismatchError.
func ValidateOrCoerce(v any, t Type, coerce bool) (any, error) {
	if Validate(v, t) {
		return v, nil
	}
	if tc, ok := t.(TCon); ok {
		nv := normalizeConstant(nativeOf(v))
		if out, ok := widen(nv, tc.Class); ok {
			return out, nil
		}
		if coerce {
			if out, ok := parseText(nv, tc.Class); ok {
				return out, nil
			}
		}
	}
	return nil, &TypeMismatchError{Value: formatValue(v), Want: t}
}

// ValidateOrCoerceSlice lifts ValidateOrCoerce over a sequence, failing fast
// on the first mismatch with no partial results.
func ValidateOrCoerceSlice(values []any, t Type, coerce bool) ([]any, error) {
	out := make([]any, len(values))
	for i, v := range values {
		coerced, err := ValidateOrCoerce(v, t, coerce)
		if err != nil {
			return nil, err
		}
		out[i] = coerced
	}
	return out, nil
}

func widen(v any, target *Class) (any, bool) {
	switch target {
	case IntClass:
		if b, ok := v.(bool); ok {
			if b {
				return int64(1), true
			}
			return int64(0), true
		}
	case FloatClass:
		switch v := v.(type) {
		case bool:
			if v {
				return float64(1), true
			}
			return float64(0), true
		case int64:
			return float64(v), true
		}
	case ComplexClass:
		switch v := v.(type) {
		case bool:
			if v {
				return complex(1, 0), true
			}
			return complex(0, 0), true
		case int64:
			return complex(float64(v), 0), true
		case float64:
			return complex(v, 0), true
		}
	case StringClass:
		switch v := v.(type) {
		case bool:
			return strconv.FormatBool(v), true
		case int64:
			return strconv.FormatInt(v, 10), true
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64), true
		case complex128:
			return strconv.FormatComplex(v, 'g', -1, 128), true
		}
	}
	return nil, false
}

func parseText(v any, target *Class) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	switch target {
	case IntClass:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	case FloatClass:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	case ComplexClass:
		if c, err := strconv.ParseComplex(s, 128); err == nil {
			return c, true
		}
	}
	return nil, false
}

func formatValue(v any) string {
	if obj, ok := v.(interface{ Inspect() string }); ok {
		return obj.Inspect()
	}
	return fmt.Sprintf("%v", v)
}
