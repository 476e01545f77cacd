package typesystem

import (
	"fmt"
	"sync"
)

// Class is the nominal identity of a concrete runtime type: the "origin" a
// generic type expression is built from. Arity fixes the number of type
// parameters (0 for plain atomics). Parent links form the nominal subclass
// graph consulted by the subtyping engine. Mutable and Priority are the
// metadata used by ResolvePriority; they are declared once and never mutated.
type Class struct {
	Name   string
	Arity  int
	Parent *Class

	Mutable     bool
	HasPriority bool
	Priority    int
}

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// IsSubclassOf reports whether c is other or a (transitive) descendant of it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Builtin classes. Bool is nominally independent of Int: the boolean→integer
// relationship is a coercion widening, not a subclass edge, so coercing a
// boolean to Int performs a real conversion.
var (
	BoolClass    = &Class{Name: "Bool"}
	IntClass     = &Class{Name: "Int"}
	FloatClass   = &Class{Name: "Float"}
	ComplexClass = &Class{Name: "Complex"}
	StringClass  = &Class{Name: "String"}
	NilClass     = &Class{Name: "Nil"}

	ListClass      = &Class{Name: "List", Arity: 1, Mutable: true}
	TupleClass     = &Class{Name: "Tuple", Arity: 1}
	SetClass       = &Class{Name: "Set", Arity: 1, Mutable: true}
	FrozenSetClass = &Class{Name: "FrozenSet", Arity: 1, Parent: SetClass}
	DictClass      = &Class{Name: "Dict", Arity: 2, Mutable: true}
	OptionClass    = &Class{Name: "Option", Arity: 1}
)

var (
	classMu sync.RWMutex
	classes = map[string]*Class{}
)

func init() {
	for _, c := range []*Class{
		BoolClass, IntClass, FloatClass, ComplexClass, StringClass, NilClass,
		ListClass, TupleClass, SetClass, FrozenSetClass, DictClass, OptionClass,
	} {
		classes[c.Name] = c
	}
}

// RegisterClass adds a user-declared class to the class table.
// Names are unique for the lifetime of the process.
func RegisterClass(c *Class) error {
	if c == nil || c.Name == "" {
		return fmt.Errorf("cannot register unnamed class")
	}
	if c.Arity < 0 {
		return fmt.Errorf("class %s: negative arity %d", c.Name, c.Arity)
	}
	classMu.Lock()
	defer classMu.Unlock()
	if _, ok := classes[c.Name]; ok {
		return fmt.Errorf("class %s already registered", c.Name)
	}
	classes[c.Name] = c
	return nil
}

// LookupClass finds a registered class by name.
func LookupClass(name string) (*Class, bool) {
	classMu.RLock()
	defer classMu.RUnlock()
	c, ok := classes[name]
	return c, ok
}
