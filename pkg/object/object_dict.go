package object

import (
	"strings"

	"github.com/funvibe/typekit/pkg/typesystem"
)

// Pair is one dict entry.
type Pair struct {
	Key   Object
	Value Object
}

// Dict represents a mutable hash map carrying declared key and value types.
type Dict struct {
	entries []Pair
	inst    *typesystem.Instance
}

// NewDict builds a typed dict. Nil keyType/valType mean "infer"; later pairs
// overwrite earlier ones with an equal key.
func NewDict(pairs []Pair, keyType, valType typesystem.Type) (*Dict, error) {
	keys := make([]Object, len(pairs))
	vals := make([]Object, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
		vals[i] = p.Value
	}
	keyType, err := resolveElemType(keys, keyType, "dict")
	if err != nil {
		return nil, err
	}
	valType, err = resolveElemType(vals, valType, "dict")
	if err != nil {
		return nil, err
	}
	inst, err := typesystem.Instantiate(typesystem.DictClass, []typesystem.Type{keyType, valType})
	if err != nil {
		return nil, err
	}
	d := &Dict{inst: inst}
	for _, p := range pairs {
		if err := d.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dict) Type() ObjectType { return DICT_OBJ }
func (d *Dict) Inspect() string {
	parts := make([]string, len(d.entries))
	for i, p := range d.entries {
		parts[i] = p.Key.Inspect() + ": " + p.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (d *Dict) RuntimeType() typesystem.Type { return d.inst.Type() }
func (d *Dict) Hash() uint32 {
	h := uint32(0)
	for _, p := range d.entries {
		h ^= 31*p.Key.Hash() + p.Value.Hash()
	}
	return h
}
func (d *Dict) Native() any {
	out := make(map[any]any, len(d.entries))
	for _, p := range d.entries {
		out[p.Key.Native()] = p.Value.Native()
	}
	return out
}

func (d *Dict) Instance() *typesystem.Instance { return d.inst }
func (d *Dict) KeyType() typesystem.Type       { return d.inst.Args[0] }
func (d *Dict) ValueType() typesystem.Type     { return d.inst.Args[1] }
func (d *Dict) Len() int                       { return len(d.entries) }

// Entries returns the pairs in insertion order.
func (d *Dict) Entries() []Pair {
	out := make([]Pair, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Dict) Get(key Object) (Object, bool) {
	for _, p := range d.entries {
		if Equals(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// Set validates or widens both key and value against the declared types and
// inserts, overwriting an existing equal key.
func (d *Dict) Set(key, value Object) error {
	k, err := CoerceObject(key, d.KeyType(), false)
	if err != nil {
		return err
	}
	v, err := CoerceObject(value, d.ValueType(), false)
	if err != nil {
		return err
	}
	for i, p := range d.entries {
		if Equals(p.Key, k) {
			d.entries[i].Value = v
			return nil
		}
	}
	d.entries = append(d.entries, Pair{Key: k, Value: v})
	return nil
}

// Merge combines two dicts; the right side wins on duplicate keys. Key and
// value types are joined independently and unrelated types fail the operator.
func (d *Dict) Merge(other *Dict) (*Dict, error) {
	keyType, err := typesystem.Join(d.KeyType(), other.KeyType())
	if err != nil {
		return nil, err
	}
	valType, err := typesystem.Join(d.ValueType(), other.ValueType())
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(d.entries)+len(other.entries))
	pairs = append(pairs, d.entries...)
	pairs = append(pairs, other.entries...)
	return NewDict(pairs, keyType, valType)
}
