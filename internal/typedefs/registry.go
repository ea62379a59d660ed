// Package typedefs maintains the set of known typedef names, both the
// standard library names predefined for a dialect and the ones declarations
// define as they are checked.
package typedefs

import (
	"sort"

	"declc/internal/ast"
	"declc/internal/dialect"
)

// DefineOutcome reports what Define did.
type DefineOutcome uint8

const (
	Added      DefineOutcome = iota
	Equivalent               // already defined with the same type
	Conflict                 // already defined with a different type
)

// Registry maps typedef names to their defining nodes. Definitions live in
// the same tree the session parses into, so a typedef node in any
// declaration can weakly reference its definition by id.
type Registry struct {
	tree       *ast.Tree
	defs       map[string]ast.NodeID
	predefined map[string]bool
}

// New builds a registry over tree, seeded with the standard names available
// in lang.
func New(tree *ast.Tree, lang dialect.ID) *Registry {
	r := &Registry{
		tree:       tree,
		defs:       make(map[string]ast.NodeID),
		predefined: make(map[string]bool),
	}
	r.seed(lang)
	return r
}

// Tree returns the tree the definitions live in.
func (r *Registry) Tree() *ast.Tree {
	return r.tree
}

// Define records root as the definition of name. If name is already defined
// the existing definition always wins; the outcome says whether the new one
// agreed with it.
func (r *Registry) Define(name string, root ast.NodeID) (ast.NodeID, DefineOutcome) {
	if existing, ok := r.defs[name]; ok {
		if r.tree.Equal(existing, root) {
			return existing, Equivalent
		}
		return existing, Conflict
	}
	r.defs[name] = root
	return root, Added
}

// Lookup returns the definition of name.
func (r *Registry) Lookup(name string) (ast.NodeID, bool) {
	id, ok := r.defs[name]
	return id, ok
}

// IsPredefined reports whether name was seeded rather than user-defined.
func (r *Registry) IsPredefined(name string) bool {
	return r.predefined[name]
}

// Names returns all defined names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
