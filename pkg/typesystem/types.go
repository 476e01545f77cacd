package typesystem

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Type is the interface for all type expressions in our system.
// Type expressions are immutable and structurally comparable: two expressions
// are equal iff their variant and all fields compare equal. Union equality is
// member-set equality, independent of insertion order, because unions are only
// ever built through NormalizeUnion.
type Type interface {
	String() string
	Equal(Type) bool
	Hash() uint32
}

// TCon represents an atomic type: a concrete nominal class with no parameters.
type TCon struct {
	Class *Class
}

func (t TCon) String() string { return t.Class.Name }

func (t TCon) Equal(other Type) bool {
	o, ok := other.(TCon)
	return ok && t.Class == o.Class
}

func (t TCon) Hash() uint32 { return hashString(t.String()) }

// Convenience atomics for the builtin classes.
var (
	BoolType    = TCon{Class: BoolClass}
	IntType     = TCon{Class: IntClass}
	FloatType   = TCon{Class: FloatClass}
	ComplexType = TCon{Class: ComplexClass}
	StringType  = TCon{Class: StringClass}
	NilType     = TCon{Class: NilClass}
)

// TAny represents the top type: every type is a subtype of it, and it is a
// subtype of nothing but itself.
type TAny struct{}

func (t TAny) String() string { return "Any" }

func (t TAny) Equal(other Type) bool {
	_, ok := other.(TAny)
	return ok
}

func (t TAny) Hash() uint32 { return hashString(t.String()) }

// Any is the canonical top type value.
var Any Type = TAny{}

// TApp represents a generic type application: an origin class applied to an
// ordered sequence of type arguments (e.g. (List Int), (Dict String Float)).
// Arity is fixed by the origin; use NewApp to have it checked.
type TApp struct {
	Origin *Class
	Args   []Type
}

// NewApp builds a generic application, validating the argument count against
// the origin's declared arity. Mismatch is a construction-time contract
// violation, not deferred to subtyping.
func NewApp(origin *Class, args ...Type) (TApp, error) {
	if len(args) != origin.Arity {
		return TApp{}, &ArityMismatchError{Class: origin, Got: len(args)}
	}
	return TApp{Origin: origin, Args: args}, nil
}

// MustApp is NewApp for statically known-correct arities.
func MustApp(origin *Class, args ...Type) TApp {
	t, err := NewApp(origin, args...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TApp) String() string {
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, t.Origin.Name)
	for _, arg := range t.Args {
		parts = append(parts, arg.String())
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func (t TApp) Equal(other Type) bool {
	o, ok := other.(TApp)
	if !ok || t.Origin != o.Origin || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (t TApp) Hash() uint32 { return hashString(t.String()) }

// TTuple represents a heterogeneous fixed-arity tuple type (e.g. (Int, Bool)).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func (t TTuple) Equal(other Type) bool {
	o, ok := other.(TTuple)
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

func (t TTuple) Hash() uint32 { return hashString(t.String()) }

// TVariadic represents a homogeneous tuple type of unbounded arity
// (e.g. (Int, ...)).
type TVariadic struct {
	Element Type
}

func (t TVariadic) String() string {
	return fmt.Sprintf("(%s, ...)", t.Element.String())
}

func (t TVariadic) Equal(other Type) bool {
	o, ok := other.(TVariadic)
	return ok && t.Element.Equal(o.Element)
}

func (t TVariadic) Hash() uint32 { return hashString(t.String()) }

// TUnion represents a union type (e.g. Int | String).
// Members are normalized: flattened, deduplicated, and sorted for comparison.
type TUnion struct {
	Types []Type
}

func (t TUnion) String() string {
	parts := make([]string, len(t.Types))
	for i, typ := range t.Types {
		parts[i] = typ.String()
	}
	return strings.Join(parts, " | ")
}

func (t TUnion) Equal(other Type) bool {
	o, ok := other.(TUnion)
	if !ok || len(t.Types) != len(o.Types) {
		return false
	}
	// Members are kept in canonical order, so pairwise comparison suffices.
	for i := range t.Types {
		if !t.Types[i].Equal(o.Types[i]) {
			return false
		}
	}
	return true
}

func (t TUnion) Hash() uint32 { return hashString(t.String()) }

// NormalizeUnion creates a normalized union type.
// It flattens nested unions, removes duplicates, and sorts members.
// A single surviving member is returned directly instead of a union.
func NormalizeUnion(types []Type) Type {
	flat := make([]Type, 0, len(types))
	for _, t := range types {
		if u, ok := t.(TUnion); ok {
			flat = append(flat, u.Types...)
		} else {
			flat = append(flat, t)
		}
	}

	seen := make(map[string]bool, len(flat))
	unique := make([]Type, 0, len(flat))
	for _, t := range flat {
		s := t.String()
		if !seen[s] {
			seen[s] = true
			unique = append(unique, t)
		}
	}

	if len(unique) == 1 {
		return unique[0]
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].String() < unique[j].String()
	})

	return TUnion{Types: unique}
}

// TLiteral represents an enumerated closed set of exact constants
// (e.g. Literal[1, 2, 3]). Values are kept in canonical order.
type TLiteral struct {
	Values []any
}

// NewLiteral builds a literal type from constants, deduplicating and sorting
// them into canonical order. Integer, float and complex constants are
// normalized to their widest Go representation first.
func NewLiteral(values ...any) TLiteral {
	seen := make(map[string]bool, len(values))
	unique := make([]any, 0, len(values))
	for _, v := range values {
		v = normalizeConstant(v)
		s := constantString(v)
		if !seen[s] {
			seen[s] = true
			unique = append(unique, v)
		}
	}
	sort.Slice(unique, func(i, j int) bool {
		return constantString(unique[i]) < constantString(unique[j])
	})
	return TLiteral{Values: unique}
}

func (t TLiteral) String() string {
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		parts[i] = constantString(v)
	}
	return fmt.Sprintf("Literal[%s]", strings.Join(parts, ", "))
}

func (t TLiteral) Equal(other Type) bool {
	o, ok := other.(TLiteral)
	if !ok || len(t.Values) != len(o.Values) {
		return false
	}
	for i := range t.Values {
		if t.Values[i] != o.Values[i] {
			return false
		}
	}
	return true
}

func (t TLiteral) Hash() uint32 { return hashString(t.String()) }

// Contains reports exact membership of a constant in the literal set.
func (t TLiteral) Contains(v any) bool {
	v = normalizeConstant(v)
	for _, member := range t.Values {
		if member == v {
			return true
		}
	}
	return false
}

// subsetOf reports whether every constant of t is a member of other.
func (t TLiteral) subsetOf(other TLiteral) bool {
	for _, v := range t.Values {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// originOf extracts the nominal origin class of a type expression.
// Top, unions and literals have no single origin and yield nil.
func originOf(t Type) *Class {
	switch t := t.(type) {
	case TCon:
		return t.Class
	case TApp:
		return t.Origin
	case TTuple, TVariadic:
		return TupleClass
	default:
		return nil
	}
}

// normalizeConstant widens numeric constants so that equal constants written
// with different Go types compare equal inside literal sets.
func normalizeConstant(v any) any {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float32:
		return float64(v)
	case complex64:
		return complex128(v)
	default:
		return v
	}
}

func constantString(v any) string {
	switch v := v.(type) {
	case nil:
		return "Nil"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case complex128:
		return strconv.FormatComplex(v, 'g', -1, 128)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// hashString is the shared fnv-1a helper for structural hashes.
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
