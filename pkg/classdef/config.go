// Package classdef loads nominal class declarations from YAML.
//
// A declaration file describes the user-defined classes the type engine
// reasons over: their arity, their place in the subclass graph, and the
// mutability/priority metadata consulted by priority resolution. Metadata is
// declared once at startup and never mutated afterwards.
//
// Example:
//
//	classes:
//	  - name: Series
//	    arity: 1
//	    mutable: true
//	  - name: FrozenSeries
//	    arity: 1
//	    parent: Series
//	  - name: Celsius
//	    priority: 10
package classdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/typekit/pkg/typesystem"
)

// File represents a top-level class declaration document.
type File struct {
	Classes []Decl `yaml:"classes"`
}

// Decl declares a single nominal class.
type Decl struct {
	// Name is the unique nominal name of the class.
	Name string `yaml:"name"`

	// Arity is the number of type parameters. Defaults to 0 (plain atomic).
	Arity int `yaml:"arity,omitempty"`

	// Parent names the nominal ancestor. It must be declared earlier in the
	// same file or already registered (builtins included).
	Parent string `yaml:"parent,omitempty"`

	// Mutable marks the class as a mutable flavor. Immutable classes win
	// priority resolution against mutable relatives.
	Mutable bool `yaml:"mutable,omitempty"`

	// Priority is the optional numeric operator priority; lower wins.
	// Two related classes declaring the same priority is a configuration
	// error surfaced at resolution time.
	Priority *int `yaml:"priority,omitempty"`
}

// Load parses and validates a declaration document.
func Load(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse class declarations: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads and parses a declaration file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Validate checks the document for structural errors before registration.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Classes))
	for i, d := range f.Classes {
		if d.Name == "" {
			return fmt.Errorf("classes[%d]: missing name", i)
		}
		if d.Arity < 0 {
			return fmt.Errorf("classes[%d] (%s): negative arity %d", i, d.Name, d.Arity)
		}
		if seen[d.Name] {
			return fmt.Errorf("classes[%d]: duplicate class %s", i, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Register applies the declarations to the typesystem class table in
// declaration order and returns the created classes.
func (f *File) Register() ([]*typesystem.Class, error) {
	created := make([]*typesystem.Class, 0, len(f.Classes))
	local := make(map[string]*typesystem.Class, len(f.Classes))
	for i, d := range f.Classes {
		var parent *typesystem.Class
		if d.Parent != "" {
			if p, ok := local[d.Parent]; ok {
				parent = p
			} else if p, ok := typesystem.LookupClass(d.Parent); ok {
				parent = p
			} else {
				return nil, fmt.Errorf("classes[%d] (%s): unknown parent %s", i, d.Name, d.Parent)
			}
		}
		c := &typesystem.Class{
			Name:    d.Name,
			Arity:   d.Arity,
			Parent:  parent,
			Mutable: d.Mutable,
		}
		if d.Priority != nil {
			c.HasPriority = true
			c.Priority = *d.Priority
		}
		if err := typesystem.RegisterClass(c); err != nil {
			return nil, err
		}
		local[d.Name] = c
		created = append(created, c)
	}
	return created, nil
}
