package typesystem

// IsSubtype reports whether a is a subtype of b. It is recursive, total over
// all type-expression shapes, and has no side effects.
//
// Rules, in priority order:
//  1. Everything is a subtype of Any; Any is a subtype of nothing but Any.
//  2. A union is a subtype of b iff every member is (coverage when b is a
//     union, since each member may pick its own covering member).
//  3. A non-union is a subtype of a union iff it is a subtype of any member.
//  4. Nominal check: the origin of a must be a reflexive-transitive subclass
//     of the origin of b.
//  5. If b carries type arguments, a must carry compatible ones: tuples have
//     their own variance rules, general generics are covariant in every
//     position.
//  6. If b carries no arguments, the nominal check alone decides.
func IsSubtype(a, b Type) bool {
	if _, ok := b.(TAny); ok {
		return true
	}
	if _, ok := a.(TAny); ok {
		return false
	}

	if ua, ok := a.(TUnion); ok {
		for _, m := range ua.Types {
			if !IsSubtype(m, b) {
				return false
			}
		}
		return true
	}

	if ub, ok := b.(TUnion); ok {
		for _, m := range ub.Types {
			if IsSubtype(a, m) {
				return true
			}
		}
		return false
	}

	// Literal sets: a literal is a subtype of a wider literal set, or of any
	// type every one of its constants satisfies. Nothing but a literal is a
	// subtype of a literal.
	if la, ok := a.(TLiteral); ok {
		if lb, ok := b.(TLiteral); ok {
			return la.subsetOf(lb)
		}
		for _, v := range la.Values {
			if !IsSubtype(atomicOf(v), b) {
				return false
			}
		}
		return true
	}
	if _, ok := b.(TLiteral); ok {
		return false
	}

	// Tuple variance.
	switch bt := b.(type) {
	case TVariadic:
		switch at := a.(type) {
		case TVariadic:
			return IsSubtype(at.Element, bt.Element)
		case TTuple:
			for _, el := range at.Elements {
				if !IsSubtype(el, bt.Element) {
					return false
				}
			}
			return true
		default:
			return false
		}
	case TTuple:
		at, ok := a.(TTuple)
		if !ok {
			// A variadic tuple is never a subtype of a fixed tuple.
			return false
		}
		if len(at.Elements) != len(bt.Elements) {
			return false
		}
		for i := range at.Elements {
			if !IsSubtype(at.Elements[i], bt.Elements[i]) {
				return false
			}
		}
		return true
	}

	ao, bo := originOf(a), originOf(b)
	if ao == nil || bo == nil {
		return false
	}
	if !ao.IsSubclassOf(bo) {
		return false
	}

	bApp, ok := b.(TApp)
	if !ok {
		// b carries no arguments: the nominal check suffices.
		return true
	}
	aApp, ok := a.(TApp)
	if !ok {
		return false
	}
	if len(aApp.Args) != len(bApp.Args) {
		return false
	}
	// Covariant in every position.
	for i := range aApp.Args {
		if !IsSubtype(aApp.Args[i], bApp.Args[i]) {
			return false
		}
	}
	return true
}

// Join returns whichever of a, b is the supertype of the other. It is not a
// full lattice join: when neither side subsumes the other it fails with
// NoCommonSupertypeError instead of synthesizing a union.
func Join(a, b Type) (Type, error) {
	if IsSubtype(a, b) {
		return b, nil
	}
	if IsSubtype(b, a) {
		return a, nil
	}
	return nil, &NoCommonSupertypeError{A: a, B: b}
}

// Meet returns whichever of a, b is the subtype of the other, failing with
// NoCommonSubtypeError when neither is.
func Meet(a, b Type) (Type, error) {
	if IsSubtype(a, b) {
		return a, nil
	}
	if IsSubtype(b, a) {
		return b, nil
	}
	return nil, &NoCommonSubtypeError{A: a, B: b}
}

// ResolvePriority deterministically selects one of two nominal (non-union)
// types' origin classes for use as a binary operator's result class.
// The selection is commutative:
//
//  1. Same origin wins immediately.
//  2. Unrelated origins are a configuration error.
//  3. Differing mutability: the immutable class wins.
//  4. Both declare a priority: the lower value wins; equal values are a
//     configuration error.
//  5. Exactly one declares a priority: it wins.
//  6. Otherwise no priority is declared and resolution fails.
func ResolvePriority(t, u Type) (*Class, error) {
	to, uo := originOf(t), originOf(u)
	if to == nil || uo == nil {
		return nil, &IncompatibleOriginsError{T: to, U: uo}
	}
	if to == uo {
		return to, nil
	}
	if !to.IsSubclassOf(uo) && !uo.IsSubclassOf(to) {
		return nil, &IncompatibleOriginsError{T: to, U: uo}
	}
	if to.Mutable != uo.Mutable {
		if to.Mutable {
			return uo, nil
		}
		return to, nil
	}
	switch {
	case to.HasPriority && uo.HasPriority:
		if to.Priority < uo.Priority {
			return to, nil
		}
		if uo.Priority < to.Priority {
			return uo, nil
		}
		return nil, &AmbiguousPriorityError{T: to, U: uo}
	case to.HasPriority:
		return to, nil
	case uo.HasPriority:
		return uo, nil
	}
	return nil, &NoPriorityDeclaredError{T: to, U: uo}
}
