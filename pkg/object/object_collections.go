package object

import (
	"strings"

	"github.com/funvibe/typekit/pkg/typesystem"
)

// Tuple represents a heterogeneous immutable collection of objects.
type Tuple struct {
	Elements []Object
}

func NewTuple(elements []Object) *Tuple {
	return &Tuple{Elements: elements}
}

func (t *Tuple) Type() ObjectType { return TUPLE_OBJ }
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		parts[i] = el.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *Tuple) RuntimeType() typesystem.Type {
	elemTypes := make([]typesystem.Type, len(t.Elements))
	for i, el := range t.Elements {
		elemTypes[i] = el.RuntimeType()
	}
	return typesystem.TTuple{Elements: elemTypes}
}
func (t *Tuple) Hash() uint32 {
	h := uint32(1)
	for _, el := range t.Elements {
		h = 31*h + el.Hash()
	}
	return h
}
func (t *Tuple) Native() any {
	out := make([]any, len(t.Elements))
	for i, el := range t.Elements {
		out[i] = el.Native()
	}
	return out
}

// List represents a mutable homogeneous collection carrying its declared
// element type. Construction resolves the canonical instantiation and
// validates or widens every element; an explicit element type permits empty
// lists.
type List struct {
	Elements []Object
	inst     *typesystem.Instance
}

// NewList builds a typed list. A nil elem means "infer from the elements".
func NewList(elements []Object, elem typesystem.Type) (*List, error) {
	elem, err := resolveElemType(elements, elem, "list")
	if err != nil {
		return nil, err
	}
	inst, err := typesystem.Instantiate(typesystem.ListClass, []typesystem.Type{elem})
	if err != nil {
		return nil, err
	}
	coerced, err := coerceAll(elements, elem, false)
	if err != nil {
		return nil, err
	}
	return &List{Elements: coerced, inst: inst}, nil
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) RuntimeType() typesystem.Type { return l.inst.Type() }
func (l *List) Hash() uint32 {
	h := uint32(7)
	for _, el := range l.Elements {
		h = 31*h + el.Hash()
	}
	return h
}
func (l *List) Native() any {
	out := make([]any, len(l.Elements))
	for i, el := range l.Elements {
		out[i] = el.Native()
	}
	return out
}

// Instance returns the canonical instantiation handle.
func (l *List) Instance() *typesystem.Instance { return l.inst }

// ElementType returns the declared element type.
func (l *List) ElementType() typesystem.Type { return l.inst.Args[0] }

func (l *List) Len() int { return len(l.Elements) }

func (l *List) Get(i int) Object {
	if i < 0 || i >= len(l.Elements) {
		return nil
	}
	return l.Elements[i]
}

// Append validates or widens v against the declared element type and appends.
func (l *List) Append(v Object) error {
	coerced, err := CoerceObject(v, l.ElementType(), false)
	if err != nil {
		return err
	}
	l.Elements = append(l.Elements, coerced)
	return nil
}

// Concat combines two lists. The result's element type is the join of both
// declared element types; unrelated element types fail rather than guess.
func (l *List) Concat(other *List) (*List, error) {
	elem, err := typesystem.Join(l.ElementType(), other.ElementType())
	if err != nil {
		return nil, err
	}
	merged := make([]Object, 0, len(l.Elements)+len(other.Elements))
	merged = append(merged, l.Elements...)
	merged = append(merged, other.Elements...)
	return NewList(merged, elem)
}

// Set represents a hash set. The same value type backs the mutable Set class
// and its immutable FrozenSet subclass; the class decides which operations
// are permitted and which flavor binary operators produce.
type Set struct {
	class    *typesystem.Class
	elements []Object
	inst     *typesystem.Instance
}

// NewSet builds a mutable typed set. A nil elem means "infer from elements".
func NewSet(elements []Object, elem typesystem.Type) (*Set, error) {
	return newSet(typesystem.SetClass, elements, elem)
}

// NewFrozenSet builds an immutable typed set.
func NewFrozenSet(elements []Object, elem typesystem.Type) (*Set, error) {
	return newSet(typesystem.FrozenSetClass, elements, elem)
}

func newSet(class *typesystem.Class, elements []Object, elem typesystem.Type) (*Set, error) {
	elem, err := resolveElemType(elements, elem, "set")
	if err != nil {
		return nil, err
	}
	inst, err := typesystem.Instantiate(class, []typesystem.Type{elem})
	if err != nil {
		return nil, err
	}
	coerced, err := coerceAll(elements, elem, false)
	if err != nil {
		return nil, err
	}
	s := &Set{class: class, inst: inst}
	for _, el := range coerced {
		if !s.Contains(el) {
			s.elements = append(s.elements, el)
		}
	}
	return s, nil
}

func (s *Set) Type() ObjectType {
	if s.class == typesystem.FrozenSetClass {
		return FROZEN_SET_OBJ
	}
	return SET_OBJ
}
func (s *Set) Inspect() string {
	parts := make([]string, len(s.elements))
	for i, el := range s.elements {
		parts[i] = el.Inspect()
	}
	out := "{" + strings.Join(parts, ", ") + "}"
	if s.class == typesystem.FrozenSetClass {
		return "frozen" + out
	}
	return out
}
func (s *Set) RuntimeType() typesystem.Type { return s.inst.Type() }
func (s *Set) Hash() uint32 {
	// Order-independent: sets with equal members hash equal.
	h := uint32(0)
	for _, el := range s.elements {
		h ^= el.Hash()
	}
	return h
}
func (s *Set) Native() any {
	out := make([]any, len(s.elements))
	for i, el := range s.elements {
		out[i] = el.Native()
	}
	return out
}

func (s *Set) Instance() *typesystem.Instance { return s.inst }
func (s *Set) Class() *typesystem.Class       { return s.class }
func (s *Set) ElementType() typesystem.Type   { return s.inst.Args[0] }
func (s *Set) Len() int                       { return len(s.elements) }

// Elements returns the members in insertion order.
func (s *Set) Elements() []Object {
	out := make([]Object, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *Set) Contains(v Object) bool {
	for _, el := range s.elements {
		if Equals(el, v) {
			return true
		}
	}
	return false
}

// Add validates or widens v and inserts it. Frozen sets reject mutation.
func (s *Set) Add(v Object) error {
	if s.class == typesystem.FrozenSetClass {
		return &FrozenError{Op: "add"}
	}
	coerced, err := CoerceObject(v, s.ElementType(), false)
	if err != nil {
		return err
	}
	if !s.Contains(coerced) {
		s.elements = append(s.elements, coerced)
	}
	return nil
}

// Union combines two sets of possibly different concrete classes. The result
// element type is the join of both declared types and the result class comes
// from priority resolution, so mixing a set with a frozen set produces a
// frozen set (mutability always loses).
func (s *Set) Union(other *Set) (*Set, error) {
	class, err := typesystem.ResolvePriority(s.RuntimeType(), other.RuntimeType())
	if err != nil {
		return nil, err
	}
	elem, err := typesystem.Join(s.ElementType(), other.ElementType())
	if err != nil {
		return nil, err
	}
	merged := make([]Object, 0, len(s.elements)+len(other.elements))
	merged = append(merged, s.elements...)
	merged = append(merged, other.elements...)
	return newSet(class, merged, elem)
}

// Intersect keeps members present in both sets. The element type is the meet
// of both declared types.
func (s *Set) Intersect(other *Set) (*Set, error) {
	class, err := typesystem.ResolvePriority(s.RuntimeType(), other.RuntimeType())
	if err != nil {
		return nil, err
	}
	elem, err := typesystem.Meet(s.ElementType(), other.ElementType())
	if err != nil {
		return nil, err
	}
	var common []Object
	for _, el := range s.elements {
		if other.Contains(el) {
			common = append(common, el)
		}
	}
	return newSet(class, common, elem)
}

// FrozenError reports a mutation attempt on an immutable container.
type FrozenError struct {
	Op string
}

func (e *FrozenError) Error() string {
	return "cannot " + e.Op + ": container is frozen"
}
