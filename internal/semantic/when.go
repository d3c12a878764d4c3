package semantic

import (
	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/types"
)

type MissingCaseKind int

const (
	BooleanCase MissingCaseKind = iota
	EnumEntryCase
	SubclassCase
	NullCase
	// UnknownCase means the subject has no finite set of values, so only an
	// else branch makes the when exhaustive.
	UnknownCase
)

func (k MissingCaseKind) String() string {
	switch k {
	case BooleanCase:
		return "boolean"
	case EnumEntryCase:
		return "enum entry"
	case SubclassCase:
		return "subclass"
	case NullCase:
		return "null"
	}
	return "unknown"
}

// MissingCase is one value or type a when does not handle.
type MissingCase struct {
	Kind MissingCaseKind
	Name string
}

// BranchConditionText is the condition a branch covering the case would
// start with, e.g. "is Circle", "Color.RED", "null" or "else".
func (c MissingCase) BranchConditionText() string {
	switch c.Kind {
	case SubclassCase:
		return "is " + c.Name
	case UnknownCase:
		return "else"
	}
	return c.Name
}

func (c MissingCase) String() string {
	return c.BranchConditionText()
}

// MissingCases lists what w does not cover, in the order branches for them
// would be written: Boolean values, enum entries in declaration order, sealed
// subclasses in declaration order, then null. An else branch covers
// everything. A subject without a finite set of values, or a when without a
// subject, yields a single UnknownCase. Subjects that failed to resolve yield
// nothing.
func (b *BindingContext) MissingCases(w *ast.WhenExpr) []MissingCase {
	if w == nil {
		return nil
	}
	for _, br := range w.Branches {
		if br.Else {
			return nil
		}
	}
	if w.Subject == nil {
		return []MissingCase{{Kind: UnknownCase, Name: "else"}}
	}
	subject := b.TypeOf(w.Subject)
	if subject == nil || subject.IsError() {
		return nil
	}

	c := b.collectCovered(w, subject)
	var missing []MissingCase
	if !c.everything {
		nonNull := subject.MakeNotNull()
		switch {
		case nonNull.Equals(types.BooleanType):
			for _, value := range []string{"true", "false"} {
				if !c.booleans[value] {
					missing = append(missing, MissingCase{Kind: BooleanCase, Name: value})
				}
			}
		case b.enumClass(nonNull) != nil:
			cd := b.enumClass(nonNull)
			for _, entry := range cd.Entries {
				if !c.entries[entry] {
					missing = append(missing, MissingCase{Kind: EnumEntryCase, Name: cd.Name + "." + entry.Name})
				}
			}
		case b.sealedClass(nonNull) != nil:
			missing = b.missingSubclasses(b.sealedClass(nonNull), c.types)
		default:
			return []MissingCase{{Kind: UnknownCase, Name: "else"}}
		}
	}
	if subject.Nullable && !c.null {
		missing = append(missing, MissingCase{Kind: NullCase, Name: "null"})
	}
	return missing
}

type coverage struct {
	everything bool // every non-null value
	null       bool
	booleans   map[string]bool
	entries    map[*descriptors.EnumEntryDescriptor]bool
	types      []*types.Type
}

func (b *BindingContext) collectCovered(w *ast.WhenExpr, subject *types.Type) coverage {
	c := coverage{
		booleans: make(map[string]bool),
		entries:  make(map[*descriptors.EnumEntryDescriptor]bool),
	}
	nonNull := subject.MakeNotNull()
	for _, br := range w.Branches {
		for _, cond := range br.Conditions {
			switch {
			case cond.IsType != nil && !cond.Negated:
				t := b.typeRefs[cond.IsType]
				if t == nil || t.IsError() {
					continue
				}
				if t.Nullable {
					c.null = true
				}
				if b.hierarchy.IsSubtypeOf(nonNull, t.MakeNotNull()) {
					c.everything = true
				}
				c.types = append(c.types, t.MakeNotNull())
			case cond.Value != nil:
				b.coverValue(&c, cond.Value)
			}
		}
	}
	return c
}

func (b *BindingContext) coverValue(c *coverage, value ast.Expr) {
	switch v := ast.Deparenthesize(value).(type) {
	case *ast.Literal:
		switch v.Kind {
		case ast.NullLiteral:
			c.null = true
		case ast.BoolLiteral:
			c.booleans[v.Value] = true
		}
	case *ast.DotExpr:
		if call := b.calls[v.Selector]; call != nil {
			if entry, ok := call.Resulting.(*descriptors.EnumEntryDescriptor); ok {
				c.entries[entry] = true
			}
		}
	case *ast.NameRef:
		if call := b.calls[v]; call != nil {
			if entry, ok := call.Resulting.(*descriptors.EnumEntryDescriptor); ok {
				c.entries[entry] = true
			}
		}
	}
}

func (b *BindingContext) enumClass(t *types.Type) *descriptors.ClassDescriptor {
	if !t.IsConcrete() {
		return nil
	}
	if cd := b.classes[t.Name]; cd != nil && cd.Kind == descriptors.EnumClass {
		return cd
	}
	return nil
}

func (b *BindingContext) sealedClass(t *types.Type) *descriptors.ClassDescriptor {
	if !t.IsConcrete() {
		return nil
	}
	if cd := b.classes[t.Name]; cd != nil && cd.Kind == descriptors.SealedClass {
		return cd
	}
	return nil
}

// missingSubclasses walks the direct subclasses of a sealed class. A sealed
// subclass that is not covered as a whole is expanded into its own
// subclasses.
func (b *BindingContext) missingSubclasses(cd *descriptors.ClassDescriptor, covered []*types.Type) []MissingCase {
	var missing []MissingCase
	for _, sub := range cd.Subclasses {
		subType := sub.DefaultType()
		if b.coveredBy(subType, covered) {
			continue
		}
		if sub.Kind == descriptors.SealedClass && len(sub.Subclasses) > 0 {
			missing = append(missing, b.missingSubclasses(sub, covered)...)
			continue
		}
		missing = append(missing, MissingCase{Kind: SubclassCase, Name: sub.Name})
	}
	return missing
}

func (b *BindingContext) coveredBy(t *types.Type, covered []*types.Type) bool {
	for _, c := range covered {
		if b.hierarchy.IsSubtypeOf(t, c) {
			return true
		}
	}
	return false
}
