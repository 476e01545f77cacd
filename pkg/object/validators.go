package object

import (
	"github.com/funvibe/typekit/pkg/typesystem"
)

// Container classes register a nominal validator so the engine checks typed
// values through their declared instantiation in O(1), without scanning
// elements or probing attributes.
func init() {
	typesystem.RegisterValidator(typesystem.ListClass, func(v any, t typesystem.TApp) bool {
		l, ok := v.(*List)
		return ok && typesystem.IsSubtype(l.RuntimeType(), t)
	})
	setValidator := func(v any, t typesystem.TApp) bool {
		s, ok := v.(*Set)
		return ok && typesystem.IsSubtype(s.RuntimeType(), t)
	}
	typesystem.RegisterValidator(typesystem.SetClass, setValidator)
	typesystem.RegisterValidator(typesystem.FrozenSetClass, setValidator)
	typesystem.RegisterValidator(typesystem.DictClass, func(v any, t typesystem.TApp) bool {
		d, ok := v.(*Dict)
		return ok && typesystem.IsSubtype(d.RuntimeType(), t)
	})
	typesystem.RegisterValidator(typesystem.OptionClass, func(v any, t typesystem.TApp) bool {
		o, ok := v.(*Option)
		return ok && typesystem.IsSubtype(o.RuntimeType(), t)
	})
}
