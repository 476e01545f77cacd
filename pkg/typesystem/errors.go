package typesystem

import "fmt"

// ArityMismatchError indicates a generic was applied to the wrong number of
// type arguments. Surfaced at construction time, fatal to the call.
type ArityMismatchError struct {
	Class *Class
	Got   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: %s expects %d type argument(s), got %d",
		e.Class.Name, e.Class.Arity, e.Got)
}

// NoCommonSupertypeError indicates neither operand of Join is a supertype of
// the other. Join does not synthesize unions; callers that want one must
// construct it explicitly.
type NoCommonSupertypeError struct {
	A, B Type
}

func (e *NoCommonSupertypeError) Error() string {
	return fmt.Sprintf("no common supertype of %s and %s", e.A, e.B)
}

// NoCommonSubtypeError is the Meet counterpart of NoCommonSupertypeError.
type NoCommonSubtypeError struct {
	A, B Type
}

func (e *NoCommonSubtypeError) Error() string {
	return fmt.Sprintf("no common subtype of %s and %s", e.A, e.B)
}

// IncompatibleOriginsError indicates ResolvePriority was asked to pick between
// two classes that are not nominally related. This is a modeling bug in the
// declared class metadata, not bad input.
type IncompatibleOriginsError struct {
	T, U *Class
}

func (e *IncompatibleOriginsError) Error() string {
	return fmt.Sprintf("cannot resolve priority: %s and %s are not related", e.T, e.U)
}

// AmbiguousPriorityError indicates two related classes declare the same
// numeric priority.
type AmbiguousPriorityError struct {
	T, U *Class
}

func (e *AmbiguousPriorityError) Error() string {
	return fmt.Sprintf("ambiguous priority: %s and %s both declare priority %d",
		e.T, e.U, e.T.Priority)
}

// NoPriorityDeclaredError indicates neither class declares a priority and the
// mutability tiebreak does not apply.
type NoPriorityDeclaredError struct {
	T, U *Class
}

func (e *NoPriorityDeclaredError) Error() string {
	return fmt.Sprintf("no priority declared for %s or %s", e.T, e.U)
}

// EmptyTypeSetError indicates Combine was given nothing to combine.
type EmptyTypeSetError struct{}

func (e *EmptyTypeSetError) Error() string {
	return "cannot combine an empty set of types"
}

// CannotInferFromEmptyError indicates inference over an empty untyped
// collection; the caller must supply an explicit type instead.
type CannotInferFromEmptyError struct {
	Kind string
}

func (e *CannotInferFromEmptyError) Error() string {
	return fmt.Sprintf("cannot infer element type of an empty %s", e.Kind)
}

// TypeMismatchError indicates a value does not satisfy a type expression and
// no coercion path closes the gap. Failed textual coercions report this same
// error to keep the taxonomy uniform.
type TypeMismatchError struct {
	Value string
	Want  Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s does not satisfy %s", e.Value, e.Want)
}
