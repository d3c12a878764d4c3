package semantic

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/flow"
	"brick/internal/stdlib"
	"brick/internal/types"
)

func (a *Analyzer) declarePrelude() {
	prelude := stdlib.Prelude()
	for _, c := range prelude.ClassOrder() {
		if err := a.hierarchy.Declare(c.Name, c.Super, 0); err != nil {
			log.Errorf("prelude class %s: %s", c.Name, err)
			continue
		}
		cd := &descriptors.ClassDescriptor{Name: c.Name, Kind: descriptors.FinalClass}
		if c.Open {
			cd.Kind = descriptors.OpenClass
		}
		cd.Super = a.binding.classes[c.Super]
		a.binding.classes[c.Name] = cd
		a.prelude.Define(cd)
	}

	for _, name := range prelude.FunctionNames() {
		f := prelude.Functions[name]
		fd := &descriptors.FunctionDescriptor{
			Name:          f.Name,
			ReturnType:    f.ReturnType.Type(),
			AcceptsLambda: f.TrailingLambda,
		}
		for _, p := range f.Parameters {
			fd.Params = append(fd.Params, &descriptors.ValueParameterDescriptor{Name: p.Name, Type: p.Type.Type(), Container: fd})
		}
		a.prelude.Define(fd)
	}
}

// collectDeclarations registers every top-level declaration. Classifiers
// come first so signatures can mention types declared further down.
func (a *Analyzer) collectDeclarations(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			cd := &descriptors.ClassDescriptor{Name: d.Name.Value, Decl: d, Kind: classKind(d.Modifier)}
			a.declareClassifier(d, d.Name, cd)
		case *ast.EnumDecl:
			cd := &descriptors.ClassDescriptor{Name: d.Name.Value, Decl: d, Kind: descriptors.EnumClass}
			for i := range d.Entries {
				cd.Entries = append(cd.Entries, &descriptors.EnumEntryDescriptor{Name: d.Entries[i].Value, Decl: &d.Entries[i], Class: cd})
			}
			a.declareClassifier(d, d.Name, cd)
		case *ast.BuilderDecl:
			bd := &descriptors.BuilderDescriptor{Name: d.Name.Value, Decl: d, TypeParameter: d.TypeParam.Value}
			a.declareClassifier(d, d.Name, bd)
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.ClassDecl:
			a.declareClassHierarchy(d)
		case *ast.EnumDecl:
			a.declareType(d, d.Name, "", 0)
		case *ast.BuilderDecl:
			a.declareType(d, d.Name, "", 1)
		}
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.BuilderDecl:
			a.declareBuilderMembers(d)
		case *ast.FunDecl:
			a.declareFunction(d)
		case *ast.PropertyDecl:
			a.declareProperty(d)
		}
	}
}

func classKind(m ast.ClassModifier) descriptors.ClassKind {
	switch m {
	case ast.OpenClass:
		return descriptors.OpenClass
	case ast.SealedClass:
		return descriptors.SealedClass
	}
	return descriptors.FinalClass
}

func (a *Analyzer) declareClassifier(node ast.Node, name ast.Ident, d descriptors.Descriptor) {
	if a.globals.LookupLocal(name.Value) != nil || types.IsBuiltinType(name.Value) || a.prelude.LookupLocal(name.Value) != nil {
		a.addDuplicateDeclarationError(name)
		return
	}
	a.globals.Define(d)
	a.binding.declarations[node] = d
	switch d := d.(type) {
	case *descriptors.ClassDescriptor:
		a.binding.classes[d.Name] = d
	case *descriptors.BuilderDescriptor:
		a.binding.builders[d.Name] = d
	}
}

// declareType adds a classifier to the hierarchy unless its declaration
// was rejected as a duplicate.
func (a *Analyzer) declareType(node ast.Node, name ast.Ident, super string, typeParams int) {
	if a.binding.declarations[node] == nil {
		return
	}
	if err := a.hierarchy.Declare(name.Value, super, typeParams); err != nil {
		log.Debugf("skipping %s: %s", name.Value, err)
	}
}

func (a *Analyzer) declareClassHierarchy(d *ast.ClassDecl) {
	cd, ok := a.binding.declarations[d].(*descriptors.ClassDescriptor)
	if !ok {
		return
	}
	super := ""
	if d.Super != nil {
		super = a.validateSuperclass(cd, d.Super)
	}
	a.declareType(d, d.Name, super, 0)
}

// validateSuperclass returns the supertype name to declare, or "" when the
// written one cannot be inherited from.
func (a *Analyzer) validateSuperclass(cd *descriptors.ClassDescriptor, ref *ast.Ident) string {
	name := ref.Value
	if name == string(types.Any) || name == string(types.Throwable) {
		return name
	}
	superClass := a.binding.classes[name]
	if superClass == nil {
		if a.binding.builders[name] != nil || types.IsBuiltinType(name) {
			a.addError(errors.ErrorInvalidOperation, fmt.Sprintf("type '%s' cannot be inherited from", name), ref.Pos)
		} else {
			a.addCompilerError(errors.UnresolvedType(name, ref.Pos, errors.FindSimilarNames(name, a.classNames())))
		}
		return ""
	}
	if superClass == cd {
		a.addError(errors.ErrorInvalidOperation, fmt.Sprintf("class '%s' cannot inherit from itself", name), ref.Pos)
		return ""
	}
	switch superClass.Kind {
	case descriptors.OpenClass:
	case descriptors.SealedClass:
		superClass.Subclasses = append(superClass.Subclasses, cd)
	default:
		a.addError(errors.ErrorInvalidOperation,
			fmt.Sprintf("%s '%s' is final and cannot be inherited from", superClass.Kind, name), ref.Pos)
		return ""
	}
	cd.Super = superClass
	return name
}

func (a *Analyzer) classNames() []string {
	names := make([]string, 0, len(a.binding.classes))
	for name := range a.binding.classes {
		names = append(names, name)
	}
	return names
}

func (a *Analyzer) declareBuilderMembers(d *ast.BuilderDecl) {
	bd, ok := a.binding.declarations[d].(*descriptors.BuilderDescriptor)
	if !ok {
		return
	}
	for _, m := range d.Members {
		if bd.Member(m.Name.Value) != nil {
			a.addDuplicateDeclarationError(m.Name)
			continue
		}
		var t *types.Type
		if m.Type != nil {
			t = a.resolveTypeRefWith(m.Type, bd.TypeParameter)
		} else {
			a.addError(errors.ErrorUnresolvedType, fmt.Sprintf("builder member '%s' must declare its type", m.Name.Value), m.Name.Pos)
			t = types.NewError("untyped builder member")
		}
		pd := &descriptors.PropertyDescriptor{Name: m.Name.Value, Decl: m, ReturnType: t, Mutable: m.Mutable, Owner: bd}
		bd.Members = append(bd.Members, pd)
		a.binding.declarations[m] = pd
	}
}

func (a *Analyzer) declareFunction(d *ast.FunDecl) {
	fd := &descriptors.FunctionDescriptor{Name: d.Name.Value, Decl: d}
	for _, p := range d.Params {
		var t *types.Type
		if p.Type != nil {
			t = a.resolveTypeRef(p.Type)
		} else {
			a.addError(errors.ErrorUnresolvedType, fmt.Sprintf("parameter '%s' must declare its type", p.Name.Value), p.Name.Pos)
			t = types.NewError("untyped parameter")
		}
		pd := &descriptors.ValueParameterDescriptor{Name: p.Name.Value, Decl: p, Type: t, Container: fd}
		fd.Params = append(fd.Params, pd)
		a.binding.declarations[p] = pd
	}
	switch {
	case d.Return != nil:
		fd.ReturnType = a.resolveTypeRef(d.Return)
	case d.Body != nil:
		fd.ReturnType = types.UnitType
	}
	a.defineGlobal(d, d.Name, fd)
}

func (a *Analyzer) declareProperty(d *ast.PropertyDecl) {
	pd := &descriptors.PropertyDescriptor{Name: d.Name.Value, Decl: d, Mutable: d.Mutable}
	if d.Type != nil {
		pd.ReturnType = a.resolveTypeRef(d.Type)
	} else if d.Init == nil {
		a.addError(errors.ErrorUnresolvedType, fmt.Sprintf("property '%s' needs a type or an initializer", d.Name.Value), d.Name.Pos)
		pd.ReturnType = types.NewError("untyped property")
	}
	a.defineGlobal(d, d.Name, pd)
}

func (a *Analyzer) defineGlobal(node ast.Node, name ast.Ident, d descriptors.Descriptor) {
	a.binding.declarations[node] = d
	if a.globals.LookupLocal(name.Value) != nil {
		a.addDuplicateDeclarationError(name)
		return
	}
	a.globals.Define(d)
}

// inferExpressionBodies types the functions and properties whose type comes
// from their body. A reference to one that is not typed yet is reported.
func (a *Analyzer) inferExpressionBodies(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FunDecl:
			if d.Return == nil && d.Body == nil && d.ExprBody != nil {
				a.analyzeFunction(d)
			}
		case *ast.PropertyDecl:
			if d.Type == nil && d.Init != nil {
				a.analyzeProperty(d)
			}
		}
	}
}

func (a *Analyzer) analyzeBodies(file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FunDecl:
			a.analyzeFunction(d)
		case *ast.PropertyDecl:
			a.analyzeProperty(d)
		case *ast.BuilderDecl:
			a.analyzeBuilderDefaults(d)
		}
	}
}

func (a *Analyzer) analyzeFunction(d *ast.FunDecl) {
	if a.analyzed[d] {
		return
	}
	a.analyzed[d] = true
	fd, ok := a.binding.declarations[d].(*descriptors.FunctionDescriptor)
	if !ok {
		return
	}

	a.enter(fd, NewScope(a.globals), flow.Empty)
	defer a.leave()

	for _, p := range fd.Params {
		if a.scope.LookupLocal(p.Name) != nil {
			a.addDuplicateDeclarationError(p.Decl.Name)
			continue
		}
		a.scope.Define(p)
	}

	if d.Body != nil {
		a.block(d.Body, nil)
		return
	}
	if d.ExprBody == nil {
		return
	}
	t := a.expr(d.ExprBody, fd.ReturnType)
	if fd.ReturnType != nil {
		a.expect(d.ExprBody, fd.ReturnType)
		return
	}
	if t == nil {
		t = types.UnitType
	}
	fd.ReturnType = t
	log.Debugf("inferred return type of %s: %s", fd.Name, t)
}

func (a *Analyzer) analyzeProperty(d *ast.PropertyDecl) {
	if a.analyzed[d] || d.Init == nil {
		return
	}
	a.analyzed[d] = true
	pd, ok := a.binding.declarations[d].(*descriptors.PropertyDescriptor)
	if !ok {
		return
	}

	a.enter(nil, a.globals, flow.Empty)
	defer a.leave()

	t := a.expr(d.Init, pd.ReturnType)
	if pd.ReturnType != nil {
		a.expect(d.Init, pd.ReturnType)
		return
	}
	if t == nil {
		t = types.NewError("untyped initializer")
	}
	pd.ReturnType = t
}

// analyzeBuilderDefaults checks member initializers. Members typed with the
// type parameter cannot be checked without a build.
func (a *Analyzer) analyzeBuilderDefaults(d *ast.BuilderDecl) {
	bd, ok := a.binding.declarations[d].(*descriptors.BuilderDescriptor)
	if !ok {
		return
	}
	a.enter(nil, a.globals, flow.Empty)
	defer a.leave()

	for _, m := range d.Members {
		if m.Init == nil {
			continue
		}
		pd, _ := a.binding.declarations[m].(*descriptors.PropertyDescriptor)
		var expected *types.Type
		if pd != nil && !mentionsParameter(pd.ReturnType, bd.TypeParameter) {
			expected = pd.ReturnType
		}
		a.expr(m.Init, expected)
		if expected != nil {
			a.expect(m.Init, expected)
		}
	}
}

func mentionsParameter(t *types.Type, param string) bool {
	if t == nil {
		return false
	}
	if t.IsConcrete() && t.Name == param && len(t.Args) == 0 {
		return true
	}
	for _, arg := range t.Args {
		if mentionsParameter(arg, param) {
			return true
		}
	}
	return false
}

// localDeclaration handles "val x = ..." inside a body.
func (a *Analyzer) localDeclaration(d *ast.PropertyDecl) {
	var declared *types.Type
	if d.Type != nil {
		declared = a.resolveTypeRef(d.Type)
	}
	var initType *types.Type
	if d.Init != nil {
		expected := declared
		if expected.IsError() {
			expected = nil
		}
		initType = a.expr(d.Init, expected)
		if expected != nil {
			a.expect(d.Init, expected)
		}
	}

	t := declared
	if t == nil {
		t = initType
	}
	if t == nil {
		a.addError(errors.ErrorUnresolvedType, fmt.Sprintf("variable '%s' needs a type or an initializer", d.Name.Value), d.Name.Pos)
		t = types.NewError("untyped variable")
	}

	local := &descriptors.LocalVariableDescriptor{
		Name:      d.Name.Value,
		Decl:      d,
		Type:      t,
		Mutable:   d.Mutable,
		Container: a.currentCallable(),
	}
	a.binding.declarations[d] = local
	if a.scope.LookupLocal(local.Name) != nil {
		a.addDuplicateDeclarationError(d.Name)
	} else {
		a.scope.Define(local)
	}
	if t.ContainsStub() {
		a.stubbedLocals = append(a.stubbedLocals, local)
	}
	if initType != nil {
		a.info = a.info.Assign(a.binding.valueOf(local, t), initType)
	}
}
