package flow

import (
	"sort"

	"brick/internal/descriptors"
	"brick/internal/language"
	"brick/internal/types"

	set "github.com/hashicorp/go-set/v3"
)

type typeSet = set.HashSet[*types.Type, string]

func newTypeSet(items ...*types.Type) *typeSet {
	s := set.NewHashSet[*types.Type, string](len(items))
	for _, t := range items {
		s.Insert(t)
	}
	return s
}

// Info is an immutable snapshot of what is known about values at one
// program point: for each value identity, the types it is known to have in
// addition to its static type. Every operation returns a new Info.
type Info struct {
	facts map[descriptors.Descriptor]*typeSet
}

// Empty holds no facts.
var Empty = &Info{}

func (i *Info) get(id descriptors.Descriptor) *typeSet {
	if i == nil || i.facts == nil {
		return nil
	}
	return i.facts[id]
}

func (i *Info) copyFacts() map[descriptors.Descriptor]*typeSet {
	facts := make(map[descriptors.Descriptor]*typeSet)
	if i != nil {
		for id, s := range i.facts {
			facts[id] = s
		}
	}
	return facts
}

// Len is the number of values with at least one fact.
func (i *Info) Len() int {
	if i == nil {
		return 0
	}
	return len(i.facts)
}

// CollectedTypes returns all recorded types for v regardless of stability,
// ordered by name.
func (i *Info) CollectedTypes(v Value) []*types.Type {
	if !v.HasIdentity() {
		return nil
	}
	s := i.get(v.Identity)
	if s == nil {
		return nil
	}
	out := s.Slice()
	sort.Slice(out, func(a, b int) bool { return out[a].String() < out[b].String() })
	return out
}

// StableTypes returns the recorded types for v when v's kind is stable under
// settings, and nothing otherwise.
func (i *Info) StableTypes(v Value, settings language.Settings) []*types.Type {
	if !v.Kind.IsStable(settings) {
		return nil
	}
	var out []*types.Type
	for _, t := range i.CollectedTypes(v) {
		if !t.Equals(v.Type) {
			out = append(out, t)
		}
	}
	return out
}

// Narrow records that v also has type t.
func (i *Info) Narrow(v Value, t *types.Type) *Info {
	if !v.HasIdentity() || t == nil || t.IsError() || t.Equals(v.Type) {
		return i
	}
	existing := i.get(v.Identity)
	if existing != nil && existing.Contains(t) {
		return i
	}
	facts := i.copyFacts()
	next := newTypeSet(t)
	if existing != nil {
		for _, old := range existing.Slice() {
			next.Insert(old)
		}
	}
	facts[v.Identity] = next
	return &Info{facts: facts}
}

// Clear forgets everything about id.
func (i *Info) Clear(id descriptors.Descriptor) *Info {
	if i.get(id) == nil {
		return i
	}
	facts := i.copyFacts()
	delete(facts, id)
	return &Info{facts: facts}
}

// Assign replaces the facts about v after "v = value" where value has type
// t. A value more specific than the declared type becomes the only fact.
func (i *Info) Assign(v Value, t *types.Type) *Info {
	if !v.HasIdentity() {
		return i
	}
	cleared := i.Clear(v.Identity)
	if t == nil || t.IsError() || t.IsStub() || t.Equals(v.Type) {
		return cleared
	}
	return cleared.Narrow(v, t)
}

// And combines facts that hold together, as after "a && b".
func (i *Info) And(other *Info) *Info {
	if other.Len() == 0 {
		return i
	}
	if i.Len() == 0 {
		return other
	}
	facts := i.copyFacts()
	for id, s := range other.facts {
		existing := facts[id]
		if existing == nil {
			facts[id] = s
			continue
		}
		merged := newTypeSet(existing.Slice()...)
		for _, t := range s.Slice() {
			merged.Insert(t)
		}
		facts[id] = merged
	}
	return &Info{facts: facts}
}

// Or keeps only facts that hold on both paths, as after an if/else.
func (i *Info) Or(other *Info) *Info {
	if i.Len() == 0 || other.Len() == 0 {
		return Empty
	}
	facts := make(map[descriptors.Descriptor]*typeSet)
	for id, s := range i.facts {
		o := other.get(id)
		if o == nil {
			continue
		}
		common := newTypeSet()
		for _, t := range s.Slice() {
			if o.Contains(t) {
				common.Insert(t)
			}
		}
		if common.Size() > 0 {
			facts[id] = common
		}
	}
	return &Info{facts: facts}
}
