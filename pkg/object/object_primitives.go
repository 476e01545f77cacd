package object

import (
	"fmt"
	"math"
	"strconv"

	"github.com/funvibe/typekit/pkg/typesystem"
)

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) RuntimeType() typesystem.Type {
	return typesystem.BoolType
}
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}
func (b *Boolean) Native() any { return b.Value }

// Integer
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) RuntimeType() typesystem.Type {
	return typesystem.IntType
}
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}
func (i *Integer) Native() any { return i.Value }

// Float
type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%g", f.Value) }
func (f *Float) RuntimeType() typesystem.Type {
	return typesystem.FloatType
}
func (f *Float) Hash() uint32 {
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}
func (f *Float) Native() any { return f.Value }

// Complex
type Complex struct {
	Value complex128
}

func (c *Complex) Type() ObjectType { return COMPLEX_OBJ }
func (c *Complex) Inspect() string  { return strconv.FormatComplex(c.Value, 'g', -1, 128) }
func (c *Complex) RuntimeType() typesystem.Type {
	return typesystem.ComplexType
}
func (c *Complex) Hash() uint32 {
	re := math.Float64bits(real(c.Value))
	im := math.Float64bits(imag(c.Value))
	return uint32(re^(re>>32)) ^ uint32(im^(im>>32))
}
func (c *Complex) Native() any { return c.Value }

// String is an atomic text value, never a sequence of characters.
type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return strconv.Quote(s.Value) }
func (s *String) RuntimeType() typesystem.Type {
	return typesystem.StringType
}
func (s *String) Hash() uint32 { return hashString(s.Value) }
func (s *String) Native() any  { return s.Value }

// Nil
type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "Nil" }
func (n *Nil) RuntimeType() typesystem.Type {
	return typesystem.NilType
}
func (n *Nil) Hash() uint32 { return 0 }
func (n *Nil) Native() any  { return nil }
