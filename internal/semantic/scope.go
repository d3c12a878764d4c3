package semantic

import (
	"sort"

	"brick/internal/descriptors"
)

// Scope maps names to descriptors. Scopes nest; lookups walk outwards. A
// scope opened for a build lambda also exposes the builder's members.
type Scope struct {
	symbols map[string]descriptors.Descriptor
	parent  *Scope
	build   *buildState
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		symbols: make(map[string]descriptors.Descriptor),
		parent:  parent,
	}
}

func (s *Scope) Define(d descriptors.Descriptor) {
	s.symbols[d.GetName()] = d
}

// Lookup finds name in this scope or any enclosing one. When the name is a
// member of an enclosing builder, the build it belongs to is returned too.
func (s *Scope) Lookup(name string) (descriptors.Descriptor, *buildState) {
	for cur := s; cur != nil; cur = cur.parent {
		if d, ok := cur.symbols[name]; ok {
			return d, nil
		}
		if cur.build != nil && cur.build.builder != nil {
			if m := cur.build.builder.Member(name); m != nil {
				return m, cur.build
			}
		}
	}
	return nil, nil
}

func (s *Scope) LookupLocal(name string) descriptors.Descriptor {
	return s.symbols[name]
}

// Names returns every name visible from s, sorted and without duplicates.
func (s *Scope) Names() []string {
	seen := make(map[string]bool)
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.symbols {
			seen[name] = true
		}
		if cur.build != nil && cur.build.builder != nil {
			for _, m := range cur.build.builder.Members {
				seen[m.Name] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
