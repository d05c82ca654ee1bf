package form

import "fmt"

// Registry maps form identifiers to their definitions.
//
// Keys are case-sensitive. A Registry is read-only after construction and
// safe for concurrent use.
type Registry struct {
	forms map[string]*Definition
	ids   []string
}

// NewRegistry builds a registry from defs, preserving their order.
// Empty or duplicate identifiers are rejected.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{forms: make(map[string]*Definition, len(defs))}

	for _, def := range defs {
		if def == nil || def.ID == "" {
			return nil, fmt.Errorf("form definition without an id")
		}

		if _, dup := r.forms[def.ID]; dup {
			return nil, fmt.Errorf("duplicate form id %q", def.ID)
		}

		r.forms[def.ID] = def
		r.ids = append(r.ids, def.ID)
	}

	return r, nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (*Definition, bool) {
	def, ok := r.forms[id]

	return def, ok
}

// IDs lists the registered identifiers in load order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Len returns the number of registered forms.
func (r *Registry) Len() int {
	return len(r.ids)
}
