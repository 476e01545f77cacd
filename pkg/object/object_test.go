package object

import (
	"errors"
	"testing"

	"github.com/funvibe/typekit/pkg/typesystem"
)

func intObj(v int64) Object     { return &Integer{Value: v} }
func strObj(v string) Object    { return &String{Value: v} }
func floatObj(v float64) Object { return &Float{Value: v} }

func mustList(t *testing.T, elements []Object, elem typesystem.Type) *List {
	t.Helper()
	l, err := NewList(elements, elem)
	if err != nil {
		t.Fatalf("NewList error: %v", err)
	}
	return l
}

func TestNewListInference(t *testing.T) {
	l := mustList(t, []Object{intObj(1), intObj(2)}, nil)
	if !l.ElementType().Equal(typesystem.IntType) {
		t.Errorf("ElementType = %s, want Int", l.ElementType())
	}
	want := typesystem.MustApp(typesystem.ListClass, typesystem.IntType)
	if !l.RuntimeType().Equal(want) {
		t.Errorf("RuntimeType = %s, want %s", l.RuntimeType(), want)
	}

	mixed := mustList(t, []Object{intObj(1), strObj("a")}, nil)
	union := typesystem.NormalizeUnion([]typesystem.Type{typesystem.IntType, typesystem.StringType})
	if !mixed.ElementType().Equal(union) {
		t.Errorf("mixed ElementType = %s, want %s", mixed.ElementType(), union)
	}
}

func TestNewListEmpty(t *testing.T) {
	// A declared element type permits an empty list.
	l := mustList(t, nil, typesystem.IntType)
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
	if !typesystem.Validate(l, typesystem.MustApp(typesystem.ListClass, typesystem.IntType)) {
		t.Error("empty typed list should validate through its declared type")
	}

	// No declared type and no elements: nothing to infer from.
	_, err := NewList(nil, nil)
	var emptyErr *typesystem.CannotInferFromEmptyError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected CannotInferFromEmptyError, got %v", err)
	}
	if emptyErr.Kind != "list" {
		t.Errorf("Kind = %q, want \"list\"", emptyErr.Kind)
	}
}

func TestListInstanceSharing(t *testing.T) {
	a := mustList(t, []Object{intObj(1)}, nil)
	b := mustList(t, nil, typesystem.IntType)
	if a.Instance() != b.Instance() {
		t.Error("lists with equal element types should share one instantiation")
	}
	c := mustList(t, nil, typesystem.StringType)
	if a.Instance() == c.Instance() {
		t.Error("lists with different element types must not share an instantiation")
	}
}

func TestListAppend(t *testing.T) {
	l := mustList(t, nil, typesystem.IntType)
	if err := l.Append(intObj(1)); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	// Widening applies on insert: a boolean lands as an integer.
	if err := l.Append(&Boolean{Value: true}); err != nil {
		t.Fatalf("Append(bool) error: %v", err)
	}
	got, ok := l.Get(1).(*Integer)
	if !ok || got.Value != 1 {
		t.Errorf("widened element = %s, want 1", l.Get(1).Inspect())
	}

	err := l.Append(strObj("x"))
	var mismatch *typesystem.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("failed append must not grow the list, Len = %d", l.Len())
	}
}

func TestListConcat(t *testing.T) {
	a := mustList(t, []Object{intObj(1)}, nil)
	b := mustList(t, []Object{intObj(2), intObj(3)}, nil)
	c, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat error: %v", err)
	}
	if c.Len() != 3 || !c.ElementType().Equal(typesystem.IntType) {
		t.Errorf("Concat = %s of %s", c.Inspect(), c.ElementType())
	}

	// Unrelated element types have no join; the operator fails rather than
	// silently widening to a union.
	f := mustList(t, []Object{floatObj(1.5)}, nil)
	_, err = a.Concat(f)
	var joinErr *typesystem.NoCommonSupertypeError
	if !errors.As(err, &joinErr) {
		t.Fatalf("expected NoCommonSupertypeError, got %v", err)
	}
}

func TestSetDedupe(t *testing.T) {
	s, err := NewSet([]Object{intObj(1), intObj(2), intObj(1)}, nil)
	if err != nil {
		t.Fatalf("NewSet error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if !s.Contains(intObj(2)) {
		t.Error("set should contain 2")
	}
	if s.Contains(intObj(3)) {
		t.Error("set should not contain 3")
	}

	if err := s.Add(intObj(2)); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("adding an existing member grew the set to %d", s.Len())
	}
}

func TestFrozenSetRejectsMutation(t *testing.T) {
	fs, err := NewFrozenSet([]Object{intObj(1)}, nil)
	if err != nil {
		t.Fatalf("NewFrozenSet error: %v", err)
	}
	if fs.Type() != FROZEN_SET_OBJ {
		t.Errorf("Type = %s, want %s", fs.Type(), FROZEN_SET_OBJ)
	}

	err = fs.Add(intObj(2))
	var frozen *FrozenError
	if !errors.As(err, &frozen) {
		t.Fatalf("expected FrozenError, got %v", err)
	}
	if fs.Len() != 1 {
		t.Errorf("frozen set mutated, Len = %d", fs.Len())
	}
}

func TestSetUnionPriority(t *testing.T) {
	s, _ := NewSet([]Object{intObj(1), intObj(2)}, nil)
	fs, _ := NewFrozenSet([]Object{intObj(2), intObj(3)}, nil)

	// Immutability always wins, in either operand order.
	for _, pair := range [][2]*Set{{s, fs}, {fs, s}} {
		u, err := pair[0].Union(pair[1])
		if err != nil {
			t.Fatalf("Union error: %v", err)
		}
		if u.Type() != FROZEN_SET_OBJ {
			t.Errorf("Union of set and frozen set = %s, want %s", u.Type(), FROZEN_SET_OBJ)
		}
		if u.Len() != 3 {
			t.Errorf("Union Len = %d, want 3", u.Len())
		}
	}

	// Same class keeps the class.
	s2, _ := NewSet([]Object{intObj(9)}, nil)
	u, err := s.Union(s2)
	if err != nil {
		t.Fatalf("Union error: %v", err)
	}
	if u.Type() != SET_OBJ {
		t.Errorf("Union of two sets = %s, want %s", u.Type(), SET_OBJ)
	}
}

func TestSetIntersect(t *testing.T) {
	a, _ := NewSet([]Object{intObj(1), intObj(2), intObj(3)}, nil)
	b, _ := NewSet([]Object{intObj(2), intObj(3), intObj(4)}, nil)
	got, err := a.Intersect(b)
	if err != nil {
		t.Fatalf("Intersect error: %v", err)
	}
	if got.Len() != 2 || !got.Contains(intObj(2)) || !got.Contains(intObj(3)) {
		t.Errorf("Intersect = %s", got.Inspect())
	}
}

func TestDict(t *testing.T) {
	d, err := NewDict([]Pair{
		{Key: strObj("a"), Value: intObj(1)},
		{Key: strObj("b"), Value: intObj(2)},
		{Key: strObj("a"), Value: intObj(3)},
	}, nil, nil)
	if err != nil {
		t.Fatalf("NewDict error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	v, ok := d.Get(strObj("a"))
	if !ok || v.Inspect() != "3" {
		t.Errorf("Get(a) = %v, want 3 (later pair wins)", v)
	}
	if !d.KeyType().Equal(typesystem.StringType) || !d.ValueType().Equal(typesystem.IntType) {
		t.Errorf("declared types = %s/%s", d.KeyType(), d.ValueType())
	}

	err = d.Set(strObj("c"), strObj("nope"))
	var mismatch *typesystem.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestDictMerge(t *testing.T) {
	a, _ := NewDict([]Pair{{Key: strObj("x"), Value: intObj(1)}, {Key: strObj("y"), Value: intObj(2)}}, nil, nil)
	b, _ := NewDict([]Pair{{Key: strObj("y"), Value: intObj(20)}, {Key: strObj("z"), Value: intObj(30)}}, nil, nil)

	m, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
	v, _ := m.Get(strObj("y"))
	if v.Inspect() != "20" {
		t.Errorf("Get(y) = %s, want 20 (right side wins)", v.Inspect())
	}
}

func TestTupleRuntimeType(t *testing.T) {
	tup := NewTuple([]Object{intObj(1), strObj("a")})
	want := typesystem.TTuple{Elements: []typesystem.Type{typesystem.IntType, typesystem.StringType}}
	if !tup.RuntimeType().Equal(want) {
		t.Errorf("RuntimeType = %s, want %s", tup.RuntimeType(), want)
	}

	// A fixed shape satisfies the variadic form but not the other way around.
	homogeneous := NewTuple([]Object{intObj(1), intObj(2)})
	variadic := typesystem.TVariadic{Element: typesystem.IntType}
	if !typesystem.IsSubtype(homogeneous.RuntimeType(), variadic) {
		t.Error("fixed int tuple should be a subtype of the variadic int tuple")
	}
	if !typesystem.Validate(homogeneous, variadic) {
		t.Error("fixed int tuple should validate against the variadic form")
	}
	if typesystem.Validate(tup, variadic) {
		t.Error("mixed tuple should not validate against the variadic int form")
	}
}

func TestOption(t *testing.T) {
	some, err := NewSome(intObj(7), nil)
	if err != nil {
		t.Fatalf("NewSome error: %v", err)
	}
	if !some.IsSome() || some.Inspect() != "Some(7)" {
		t.Errorf("Inspect = %s", some.Inspect())
	}
	if !some.ElementType().Equal(typesystem.IntType) {
		t.Errorf("ElementType = %s, want Int", some.ElementType())
	}

	none, err := NewNone(typesystem.IntType)
	if err != nil {
		t.Fatalf("NewNone error: %v", err)
	}
	if !none.IsNone() || none.Inspect() != "None" {
		t.Errorf("Inspect = %s", none.Inspect())
	}
	if some.Instance() != none.Instance() {
		t.Error("Some and None of the same element type should share an instantiation")
	}

	// Declared-type validation works without contents.
	optInt := typesystem.MustApp(typesystem.OptionClass, typesystem.IntType)
	if !typesystem.Validate(none, optInt) {
		t.Error("empty option should validate through its declared type")
	}

	_, err = NewNone(nil)
	var emptyErr *typesystem.CannotInferFromEmptyError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected CannotInferFromEmptyError, got %v", err)
	}
}

func TestContainerValidators(t *testing.T) {
	l := mustList(t, []Object{intObj(1), intObj(2)}, nil)
	s, _ := NewSet([]Object{intObj(1)}, nil)
	fs, _ := NewFrozenSet([]Object{intObj(1)}, nil)
	d, _ := NewDict([]Pair{{Key: strObj("a"), Value: intObj(1)}}, nil, nil)

	listInt := typesystem.MustApp(typesystem.ListClass, typesystem.IntType)
	setInt := typesystem.MustApp(typesystem.SetClass, typesystem.IntType)
	dictSI := typesystem.MustApp(typesystem.DictClass, typesystem.StringType, typesystem.IntType)

	tests := []struct {
		name  string
		value Object
		typ   typesystem.Type
		want  bool
	}{
		{"list matches", l, listInt, true},
		{"list wrong argument", l, typesystem.MustApp(typesystem.ListClass, typesystem.StringType), false},
		{"list is not a set", l, setInt, false},
		{"set matches", s, setInt, true},
		{"frozen set matches frozen", fs, typesystem.MustApp(typesystem.FrozenSetClass, typesystem.IntType), true},
		{"frozen set is a set", fs, setInt, true},
		{"set is not frozen", s, typesystem.MustApp(typesystem.FrozenSetClass, typesystem.IntType), false},
		{"dict matches", d, dictSI, true},
		{"dict wrong value type", d, typesystem.MustApp(typesystem.DictClass, typesystem.StringType, typesystem.FloatType), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typesystem.Validate(tt.value, tt.typ); got != tt.want {
				t.Errorf("Validate(%s, %s) = %v, want %v", tt.value.Inspect(), tt.typ, got, tt.want)
			}
		})
	}
}

func TestCoerceObject(t *testing.T) {
	got, err := CoerceObject(&Boolean{Value: true}, typesystem.FloatType, false)
	if err != nil {
		t.Fatalf("CoerceObject error: %v", err)
	}
	f, ok := got.(*Float)
	if !ok || f.Value != 1 {
		t.Errorf("coerced = %s, want 1", got.Inspect())
	}

	// Textual narrowing only on request.
	if _, err := CoerceObject(strObj("3"), typesystem.IntType, false); err == nil {
		t.Error("text should not narrow without coerce")
	}
	got, err = CoerceObject(strObj("3"), typesystem.IntType, true)
	if err != nil {
		t.Fatalf("CoerceObject error: %v", err)
	}
	i, ok := got.(*Integer)
	if !ok || i.Value != 3 {
		t.Errorf("coerced = %s, want 3", got.Inspect())
	}

	// Valid objects pass through unchanged, same pointer.
	orig := intObj(5)
	got, err = CoerceObject(orig, typesystem.IntType, false)
	if err != nil {
		t.Fatalf("CoerceObject error: %v", err)
	}
	if got != orig {
		t.Error("valid object should pass through untouched")
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Object
		want bool
	}{
		{"equal ints", intObj(1), intObj(1), true},
		{"unequal ints", intObj(1), intObj(2), false},
		{"equal strings", strObj("a"), strObj("a"), true},
		{"int vs string", intObj(1), strObj("1"), false},
		{"nils", &Nil{}, &Nil{}, true},
		{"equal tuples", NewTuple([]Object{intObj(1)}), NewTuple([]Object{intObj(1)}), true},
		{"unequal tuples", NewTuple([]Object{intObj(1)}), NewTuple([]Object{intObj(2)}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals(%s, %s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.want)
			}
		})
	}
}

func TestFromNative(t *testing.T) {
	for _, v := range []any{nil, true, 1, int64(2), 1.5, complex(1, 2), "s"} {
		obj, err := FromNative(v)
		if err != nil {
			t.Fatalf("FromNative(%v) error: %v", v, err)
		}
		if v == nil {
			if _, ok := obj.(*Nil); !ok {
				t.Errorf("FromNative(nil) = %T", obj)
			}
			continue
		}
		want := v
		if i, ok := v.(int); ok {
			want = int64(i)
		}
		if obj.Native() != want {
			t.Errorf("FromNative(%v).Native() = %v", v, obj.Native())
		}
	}

	if _, err := FromNative(struct{}{}); err == nil {
		t.Error("FromNative should reject unrepresentable values")
	}
}
