package object

import (
	"github.com/funvibe/typekit/pkg/typesystem"
)

// Option boxes zero or one value of a declared type. An empty option keeps
// its declared type, so inference over it never needs contents.
type Option struct {
	value Object // nil when empty
	inst  *typesystem.Instance
}

// NewSome builds an occupied option. A nil elem means "use the value's type".
func NewSome(v Object, elem typesystem.Type) (*Option, error) {
	if elem == nil {
		elem = v.RuntimeType()
	}
	inst, err := typesystem.Instantiate(typesystem.OptionClass, []typesystem.Type{elem})
	if err != nil {
		return nil, err
	}
	coerced, err := CoerceObject(v, elem, false)
	if err != nil {
		return nil, err
	}
	return &Option{value: coerced, inst: inst}, nil
}

// NewNone builds an empty option; the element type must be supplied since
// there is nothing to infer it from.
func NewNone(elem typesystem.Type) (*Option, error) {
	if elem == nil {
		return nil, &typesystem.CannotInferFromEmptyError{Kind: "option"}
	}
	inst, err := typesystem.Instantiate(typesystem.OptionClass, []typesystem.Type{elem})
	if err != nil {
		return nil, err
	}
	return &Option{inst: inst}, nil
}

func (o *Option) Type() ObjectType { return OPTION_OBJ }
func (o *Option) Inspect() string {
	if o.value == nil {
		return "None"
	}
	return "Some(" + o.value.Inspect() + ")"
}
func (o *Option) RuntimeType() typesystem.Type { return o.inst.Type() }
func (o *Option) Hash() uint32 {
	if o.value == nil {
		return 17
	}
	return 31 + o.value.Hash()
}
func (o *Option) Native() any {
	if o.value == nil {
		return nil
	}
	return o.value.Native()
}

func (o *Option) Instance() *typesystem.Instance { return o.inst }
func (o *Option) ElementType() typesystem.Type   { return o.inst.Args[0] }
func (o *Option) IsSome() bool                   { return o.value != nil }
func (o *Option) IsNone() bool                   { return o.value == nil }

// Value returns the boxed object, if any.
func (o *Option) Value() (Object, bool) {
	if o.value == nil {
		return nil, false
	}
	return o.value, true
}
