package object

import (
	"hash/fnv"

	"github.com/funvibe/typekit/pkg/typesystem"
)

type ObjectType string

const (
	BOOLEAN_OBJ    = "BOOLEAN"
	INTEGER_OBJ    = "INTEGER"
	FLOAT_OBJ      = "FLOAT"
	COMPLEX_OBJ    = "COMPLEX"
	STRING_OBJ     = "STRING"
	NIL_OBJ        = "NIL"
	TUPLE_OBJ      = "TUPLE"
	LIST_OBJ       = "LIST"
	SET_OBJ        = "SET"
	FROZEN_SET_OBJ = "FROZEN_SET"
	DICT_OBJ       = "DICT"
	OPTION_OBJ     = "OPTION"
)

// Object is the runtime value model the type engine reasons over.
// RuntimeType returns the type system representation; for typed containers it
// is the declared canonical instantiation, so inference and validation never
// need to re-scan contents.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type
	Hash() uint32
	Native() any
}

// Equals compares two objects structurally.
func Equals(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hash() == b.Hash() && a.Inspect() == b.Inspect()
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
