package semantic

import (
	"fmt"

	"brick/internal/ast"
	"brick/internal/descriptors"
	"brick/internal/errors"
	"brick/internal/flow"
	"brick/internal/types"
)

// expr analyzes e and returns its static type. expected is the type the
// context wants, used to infer builder type arguments; it is not checked
// here.
func (a *Analyzer) expr(e ast.Expr, expected *types.Type) *types.Type {
	if e == nil {
		return nil
	}
	a.binding.flowBefore[e] = a.info

	var t *types.Type
	switch e := e.(type) {
	case *ast.BadExpr:
		t = types.NewError("bad expression")
	case *ast.Block:
		t = a.block(e, expected)
	case *ast.Literal:
		t = literalType(e)
	case *ast.NameRef:
		t = a.nameRef(e)
	case *ast.ParenExpr:
		t = a.expr(e.Inner, expected)
	case *ast.UnaryExpr:
		t = a.unary(e)
	case *ast.IsExpr:
		t = a.condition(e)
	case *ast.BinaryExpr:
		t = a.binary(e)
	case *ast.DotExpr:
		t = a.dot(e)
	case *ast.CallExpr:
		t = a.call(e)
	case *ast.LambdaExpr:
		a.lambda(e, "", nil)
		t = types.FunctionType
	case *ast.IfExpr:
		t = a.ifExpr(e, expected)
	case *ast.WhenExpr:
		t = a.when(e, expected)
	case *ast.TryExpr:
		t = a.try(e, expected)
	case *ast.WhileExpr:
		t = a.while(e)
	case *ast.ReturnExpr:
		t = a.returnExpr(e)
	case *ast.ThrowExpr:
		a.expr(e.Value, types.ThrowableType)
		a.expect(e.Value, types.ThrowableType)
		t = types.NothingType
	case *ast.BuildExpr:
		t = a.build(e, expected)
	default:
		t = types.NewError(fmt.Sprintf("unsupported expression %T", e))
	}

	a.record(e, t)
	return t
}

func literalType(l *ast.Literal) *types.Type {
	switch l.Kind {
	case ast.IntLiteral:
		return types.IntType
	case ast.StringLiteral:
		return types.StringType
	case ast.BoolLiteral:
		return types.BooleanType
	}
	return types.NullType
}

func isNullLiteral(e ast.Expr) bool {
	l, ok := ast.Deparenthesize(e).(*ast.Literal)
	return ok && l.Kind == ast.NullLiteral
}

// block analyzes statements in a fresh scope. Its type is the type of the
// last statement, or Unit.
func (a *Analyzer) block(b *ast.Block, expected *types.Type) *types.Type {
	a.pushScope()
	defer a.popScope()

	t := types.UnitType
	for i, stmt := range b.Stmts {
		switch s := stmt.(type) {
		case *ast.PropertyDecl:
			a.localDeclaration(s)
			t = types.UnitType
			if s.Init != nil && isJump(a.binding.types[s.Init]) {
				t = types.NothingType
			}
		case ast.Expr:
			var exp *types.Type
			if i == len(b.Stmts)-1 {
				exp = expected
			}
			t = a.expr(s, exp)
		}
	}
	if t == nil {
		t = types.UnitType
	}
	return t
}

func (a *Analyzer) nameRef(n *ast.NameRef) *types.Type {
	d, state := a.scope.Lookup(n.Name)
	if d == nil {
		a.addUnresolvedReferenceError(n)
		return types.NewError("unresolved " + n.Name)
	}

	switch d := d.(type) {
	case *descriptors.PropertyDescriptor:
		if state != nil {
			return a.builderMember(n, d, state)
		}
	case *descriptors.FunctionDescriptor:
		a.recordCall(n, d, d)
		return types.FunctionType
	case *descriptors.ClassDescriptor, *descriptors.BuilderDescriptor:
		a.recordCall(n, d, d)
		a.addNotAValueError(n, d)
		return types.NewError("not a value")
	}

	a.ensureTyped(d)
	a.recordCall(n, d, d)
	t := descriptors.ReturnTypeOf(d)
	if t == nil {
		a.addUntypedReferenceError(n)
		return types.NewError("untyped " + n.Name)
	}
	return t
}

func (a *Analyzer) unary(e *ast.UnaryExpr) *types.Type {
	if e.Op == "!" {
		return a.condition(e)
	}
	t := a.expr(e.Operand, nil)
	if t.IsError() {
		return t
	}
	if e.Op == "-" && t.Equals(types.IntType) {
		return types.IntType
	}
	a.addInvalidOperationError(e.Op, t.String(), "", e.Pos)
	return types.NewError("invalid operand")
}

// condition analyzes a Boolean expression used for its value. Facts that
// hold on only one outcome are dropped afterwards.
func (a *Analyzer) condition(e ast.Expr) *types.Type {
	onTrue, onFalse := a.cond(e)
	a.info = onTrue.Or(onFalse)
	return types.BooleanType
}

func (a *Analyzer) binary(e *ast.BinaryExpr) *types.Type {
	switch e.Op {
	case "=", "+=", "-=":
		return a.assignment(e)
	case "&&", "||", "==", "!=":
		return a.condition(e)
	}

	lt := a.expr(e.Left, nil)
	rt := a.expr(e.Right, nil)
	if lt.IsError() || rt.IsError() || lt == nil || rt == nil {
		return types.NewError("invalid operand")
	}
	if t := a.operatorResult(e.Op, lt, rt); t != nil {
		return t
	}
	a.addInvalidOperationError(e.Op, lt.String(), rt.String(), e.OpPos)
	return types.NewError("invalid operation")
}

// operatorResult is the type of "l op r", or nil when op does not apply.
// Operands are matched by subtyping, so a Nothing operand fits any side.
func (a *Analyzer) operatorResult(op string, l, r *types.Type) *types.Type {
	ints := a.hierarchy.IsSubtypeOf(l, types.IntType) && a.hierarchy.IsSubtypeOf(r, types.IntType)
	switch op {
	case "+":
		if ints {
			return types.IntType
		}
		if a.hierarchy.IsSubtypeOf(l, types.StringType) {
			return types.StringType
		}
	case "-", "*", "/", "%":
		if ints {
			return types.IntType
		}
	case "<", "<=", ">", ">=":
		if ints {
			return types.BooleanType
		}
	}
	return nil
}

// assignment handles "=", "+=" and "-=". The target is resolved first so a
// builder member can take its type argument from the assigned value.
func (a *Analyzer) assignment(e *ast.BinaryExpr) *types.Type {
	var name *ast.NameRef
	switch l := ast.Deparenthesize(e.Left).(type) {
	case *ast.NameRef:
		name = l
	case *ast.DotExpr:
		name = l.Selector
	}
	target := a.expr(e.Left, nil)
	if name == nil {
		a.addError(errors.ErrorInvalidOperation, fmt.Sprintf("cannot assign to '%s'", e.Left), e.Left.NodePos())
	}

	expected := target
	if target.IsError() || target.ContainsStub() {
		expected = nil
	}
	rt := a.expr(e.Right, expected)

	if e.Op == "=" {
		if expected != nil {
			a.expect(e.Right, target)
		} else if name != nil {
			a.inferFromAssignment(name, rt)
		}
		if name != nil {
			a.info = a.info.Assign(a.binding.CreateValue(name, target), rt)
		}
	} else {
		if !target.IsError() && !rt.IsError() && target != nil && rt != nil && !target.ContainsStub() {
			if a.operatorResult(e.Op[:1], target, rt) == nil {
				a.addInvalidOperationError(e.Op, target.String(), rt.String(), e.OpPos)
			}
		}
		if name != nil {
			v := a.binding.CreateValue(name, target)
			if v.Identity != nil {
				a.info = a.info.Clear(v.Identity)
			}
		}
	}

	if name != nil {
		a.markCapturedWrite(name)
	}
	return types.UnitType
}

// markCapturedWrite notes writes to a local from a lambda that did not
// declare it.
func (a *Analyzer) markCapturedWrite(name *ast.NameRef) {
	call := a.binding.calls[name]
	if call == nil {
		return
	}
	local, ok := call.Resulting.(*descriptors.LocalVariableDescriptor)
	if !ok {
		return
	}
	if lambda, ok := a.currentCallable().(*descriptors.AnonymousFunctionDescriptor); ok && local.Container != lambda {
		a.binding.capturedWrites[local] = true
	}
}

func (a *Analyzer) dot(e *ast.DotExpr) *types.Type {
	if e.Selector == nil {
		a.expr(e.Receiver, nil)
		return types.NewError("missing selector")
	}
	sel := e.Selector
	a.binding.flowBefore[sel] = a.info

	if recv, ok := e.Receiver.(*ast.NameRef); ok {
		if cd, ok := a.lookupClass(recv.Name); ok {
			a.binding.flowBefore[recv] = a.info
			a.recordCall(recv, cd, cd)
			return a.enumEntry(cd, sel)
		}
	}

	rt := a.expr(e.Receiver, nil)
	if rt.IsError() {
		return rt
	}
	if rt.IsConcrete() && !rt.Nullable && len(rt.Args) == 1 {
		if builder := a.binding.builders[rt.Name]; builder != nil {
			member := builder.Member(sel.Name)
			if member == nil {
				a.addUnresolvedMemberError(sel, memberNames(builder))
				return types.NewError("unresolved member")
			}
			resolved := member.WithTypeArgument(rt.Args[0])
			a.recordCall(sel, resolved, resolved)
			a.memberArgs[sel] = rt.Args[0]
			a.record(sel, resolved.ReturnType)
			return resolved.ReturnType
		}
	}
	if rt.Nullable {
		a.addError(errors.ErrorInvalidOperation,
			fmt.Sprintf("cannot access '%s' on a value of nullable type '%s'", sel.Name, rt), sel.Pos)
	} else {
		a.addUnresolvedMemberError(sel, nil)
	}
	return types.NewError("unresolved member")
}

func (a *Analyzer) lookupClass(name string) (*descriptors.ClassDescriptor, bool) {
	d, _ := a.scope.Lookup(name)
	cd, ok := d.(*descriptors.ClassDescriptor)
	return cd, ok
}

func (a *Analyzer) enumEntry(cd *descriptors.ClassDescriptor, sel *ast.NameRef) *types.Type {
	entry := cd.Entry(sel.Name)
	if entry == nil {
		names := make([]string, len(cd.Entries))
		for i, e := range cd.Entries {
			names[i] = e.Name
		}
		a.addUnresolvedMemberError(sel, names)
		return types.NewError("unresolved entry")
	}
	a.recordCall(sel, entry, entry)
	t := cd.DefaultType()
	a.record(sel, t)
	return t
}

func memberNames(b *descriptors.BuilderDescriptor) []string {
	names := make([]string, len(b.Members))
	for i, m := range b.Members {
		names[i] = m.Name
	}
	return names
}

func (a *Analyzer) call(c *ast.CallExpr) *types.Type {
	callee, ok := c.Callee.(*ast.NameRef)
	if !ok {
		a.expr(c.Callee, nil)
		a.analyzeArguments(c, nil)
		a.addCompilerError(errors.NotCallable(fmt.Sprint(c.Callee), c.Callee.NodePos()))
		return types.NewError("not callable")
	}

	a.binding.flowBefore[callee] = a.info
	d, _ := a.scope.Lookup(callee.Name)
	switch d := d.(type) {
	case nil:
		a.addUnresolvedReferenceError(callee)
		a.analyzeArguments(c, nil)
		return types.NewError("unresolved " + callee.Name)
	case *descriptors.FunctionDescriptor:
		a.recordCall(callee, d, d)
		a.record(callee, types.FunctionType)
		return a.functionCall(c, callee, d)
	case *descriptors.ClassDescriptor:
		a.recordCall(callee, d, d)
		a.record(callee, d.DefaultType())
		return a.constructorCall(c, d)
	default:
		a.recordCall(callee, d, d)
		a.record(callee, descriptors.ReturnTypeOf(d))
		a.analyzeArguments(c, nil)
		a.addCompilerError(errors.NotCallable(callee.Name, callee.Pos))
		return types.NewError("not callable")
	}
}

// analyzeArguments analyzes the value arguments of c against params and any
// trailing lambda without a call name.
func (a *Analyzer) analyzeArguments(c *ast.CallExpr, params []*types.Type) {
	for i, arg := range c.Args {
		var expected *types.Type
		if i < len(params) {
			expected = params[i]
		}
		a.expr(arg, expected)
		a.expect(arg, expected)
	}
	if c.Lambda != nil {
		a.lambda(c.Lambda, "", nil)
	}
}

func (a *Analyzer) functionCall(c *ast.CallExpr, callee *ast.NameRef, fd *descriptors.FunctionDescriptor) *types.Type {
	if len(c.Args) != len(fd.Params) {
		a.addCompilerError(errors.InvalidArguments(fd.Name, len(fd.Params), len(c.Args), callee.Pos))
	}
	for i, arg := range c.Args {
		var expected *types.Type
		if i < len(fd.Params) {
			expected = fd.Params[i].Type
		}
		a.expr(arg, expected)
		a.expect(arg, expected)
	}

	var lambdaResult *types.Type
	switch {
	case c.Lambda != nil && fd.AcceptsLambda:
		lambdaResult = a.lambda(c.Lambda, callee.Name, nil)
	case c.Lambda != nil:
		a.addError(errors.ErrorInvalidArguments, fmt.Sprintf("function '%s' does not take a trailing lambda", fd.Name), c.Lambda.Pos)
		a.lambda(c.Lambda, callee.Name, nil)
	case fd.AcceptsLambda:
		a.addError(errors.ErrorInvalidArguments, fmt.Sprintf("function '%s' expects a trailing lambda", fd.Name), callee.Pos)
	}

	a.ensureTyped(fd)
	switch {
	case fd.ReturnType != nil:
		return fd.ReturnType
	case fd.AcceptsLambda:
		if lambdaResult == nil {
			return types.UnitType
		}
		return lambdaResult
	}
	a.addUntypedReferenceError(callee)
	return types.NewError("untyped " + fd.Name)
}

// constructorCall instantiates a class. Throwables take an optional message.
func (a *Analyzer) constructorCall(c *ast.CallExpr, cd *descriptors.ClassDescriptor) *types.Type {
	var params []*types.Type
	if a.hierarchy.IsSubtypeOf(cd.DefaultType(), types.ThrowableType) {
		params = []*types.Type{types.StringType}
	}
	if cd.Kind == descriptors.SealedClass || cd.Kind == descriptors.EnumClass {
		a.addError(errors.ErrorNotCallable, fmt.Sprintf("%s '%s' cannot be instantiated", cd.Kind, cd.Name), c.Callee.NodePos())
	}
	if len(c.Args) > len(params) {
		a.addCompilerError(errors.InvalidArguments(cd.Name, len(params), len(c.Args), c.Callee.NodePos()))
	}
	if c.Lambda != nil {
		a.addError(errors.ErrorInvalidArguments, fmt.Sprintf("constructor of '%s' does not take a trailing lambda", cd.Name), c.Lambda.Pos)
	}
	a.analyzeArguments(c, params)
	return cd.DefaultType()
}

// lambda analyzes a lambda body and returns the type of its result. The
// lambda can be targeted by return@label for its own label and for
// callName, the function it is passed to.
func (a *Analyzer) lambda(l *ast.LambdaExpr, callName string, state *buildState) *types.Type {
	a.binding.flowBefore[l] = a.info
	a.record(l, types.FunctionType)

	fd := &descriptors.AnonymousFunctionDescriptor{Decl: l}
	if l.Label != nil {
		fd.Labels = append(fd.Labels, l.Label.Value)
	}
	if callName != "" {
		fd.Labels = append(fd.Labels, callName)
	}
	a.binding.declarations[l] = fd

	saved := a.info
	a.scope = NewScope(a.scope)
	a.scope.build = state
	a.callables = append(a.callables, fd)
	defer func() {
		a.callables = a.callables[:len(a.callables)-1]
		a.popScope()
		// Writes inside the lambda invalidate the facts it started from.
		a.info = saved
		if l.Body != nil {
			for _, id := range a.assignedIdentities(l.Body) {
				a.info = a.info.Clear(id)
			}
		}
	}()

	result := types.UnitType
	if l.Body != nil && len(l.Body.Stmts) > 0 {
		result = a.block(l.Body, nil)
	}
	if returned, ok := a.lambdaResults[l]; ok {
		result = a.commonType(returned, result)
	}
	a.lambdaResults[l] = result
	return result
}

func (a *Analyzer) ifExpr(e *ast.IfExpr, expected *types.Type) *types.Type {
	onTrue, onFalse := a.cond(e.Cond)

	a.info = onTrue
	thenType := a.expr(e.Then, expected)
	branches := []branch{{thenType, a.info}}

	a.info = onFalse
	var elseType *types.Type
	if e.Else != nil {
		elseType = a.expr(e.Else, expected)
	}
	branches = append(branches, branch{elseType, a.info})
	a.info = mergeBranches(branches)

	if e.Else == nil {
		return types.UnitType
	}
	if t := a.commonType(thenType, elseType); t != nil {
		return t
	}
	return types.UnitType
}

func (a *Analyzer) when(w *ast.WhenExpr, expected *types.Type) *types.Type {
	var subjectType *types.Type
	if w.Subject != nil {
		subjectType = a.expr(w.Subject, nil)
	}

	next := a.info
	var branches []branch
	var result *types.Type
	for _, b := range w.Branches {
		a.info = next
		taken := next
		if !b.Else {
			var onTrue []*flow.Info
			for _, c := range b.Conditions {
				t, f := a.whenCondition(w, c, subjectType)
				onTrue = append(onTrue, t)
				a.info = f
			}
			next = a.info
			taken = orAll(onTrue)
		}
		a.info = taken
		bt := a.expr(b.Body, expected)
		branches = append(branches, branch{bt, a.info})
		result = a.commonType(result, bt)
	}

	exhaustive := len(w.Branches) > 0 && len(a.binding.MissingCases(w)) == 0
	if !exhaustive {
		branches = append(branches, branch{nil, next})
	}
	a.info = mergeBranches(branches)
	if !exhaustive && expected != nil && len(w.Branches) > 0 {
		// Reported as NO_ELSE_IN_WHEN once usage is known.
		return types.NewError("non-exhaustive when")
	}
	if !exhaustive || result == nil {
		return types.UnitType
	}
	return result
}

func orAll(infos []*flow.Info) *flow.Info {
	if len(infos) == 0 {
		return flow.Empty
	}
	out := infos[0]
	for _, info := range infos[1:] {
		out = out.Or(info)
	}
	return out
}

// whenCondition returns the facts when the condition matches and when it
// does not.
func (a *Analyzer) whenCondition(w *ast.WhenExpr, c *ast.WhenCondition, subjectType *types.Type) (onTrue, onFalse *flow.Info) {
	before := a.info
	if c.IsType != nil {
		target := a.resolveTypeRef(c.IsType)
		if w.Subject == nil {
			a.addError(errors.ErrorInvalidOperation, "type checks in 'when' need a subject", c.Pos)
			return before, before
		}
		narrowed := before.Narrow(a.binding.CreateValue(w.Subject, subjectType), target)
		if c.Negated {
			return before, narrowed
		}
		return narrowed, before
	}
	if c.Value == nil {
		return before, before
	}
	if w.Subject == nil {
		return a.cond(c.Value)
	}

	a.expr(c.Value, subjectType)
	if isNullLiteral(c.Value) && subjectType != nil {
		notNull := before.Narrow(a.binding.CreateValue(w.Subject, subjectType), subjectType.MakeNotNull())
		return a.info, notNull
	}
	return a.info, a.info
}

// try analyzes the body and handlers. A handler may run after any part of
// the body, so it starts without the facts about values the body assigns.
func (a *Analyzer) try(e *ast.TryExpr, expected *types.Type) *types.Type {
	before := a.info
	var branches []branch
	var result *types.Type
	if e.Body != nil {
		a.binding.flowBefore[e.Body] = a.info
		bodyType := a.block(e.Body, expected)
		a.record(e.Body, bodyType)
		branches = append(branches, branch{bodyType, a.info})
		result = bodyType
	}

	handlerStart := before
	for _, id := range a.assignedIdentities(e.Body) {
		handlerStart = handlerStart.Clear(id)
	}
	for _, c := range e.Catches {
		a.info = handlerStart
		a.pushScope()
		if c.Param != nil {
			a.catchParameter(c.Param)
		}
		var ct *types.Type
		if c.Body != nil {
			a.binding.flowBefore[c.Body] = a.info
			ct = a.block(c.Body, expected)
			a.record(c.Body, ct)
		}
		a.popScope()
		branches = append(branches, branch{ct, a.info})
		result = a.commonType(result, ct)
	}

	a.info = mergeBranches(branches)
	if e.Finally != nil {
		a.binding.flowBefore[e.Finally] = a.info
		a.record(e.Finally, a.block(e.Finally, nil))
	}
	if result == nil {
		return types.UnitType
	}
	return result
}

func (a *Analyzer) catchParameter(p *ast.Param) {
	t := types.ThrowableType
	if p.Type != nil {
		t = a.resolveTypeRef(p.Type)
		if !t.IsError() && !a.hierarchy.IsSubtypeOf(t, types.ThrowableType) {
			a.addCompilerError(errors.TypeMismatch(types.ThrowableType.String(), t.String(), p.Type.Pos, nodeLength(p.Type)))
		}
	}
	pd := &descriptors.ValueParameterDescriptor{Name: p.Name.Value, Decl: p, Type: t, Container: a.currentCallable()}
	a.binding.declarations[p] = pd
	a.scope.Define(pd)
}

// assignedIdentities lists the flow identities assigned anywhere below n,
// using the calls already resolved there.
func (a *Analyzer) assignedIdentities(n ast.Node) []descriptors.Descriptor {
	if n == nil {
		return nil
	}
	var out []descriptors.Descriptor
	ast.Inspect(n, func(node ast.Node) bool {
		name := assignmentTarget(node)
		if name == nil {
			return true
		}
		if call := a.binding.calls[name]; call != nil {
			out = append(out, identityOf(call.Resulting))
		}
		return true
	})
	return out
}

// assignmentTarget returns the name assigned by node, if node is an
// assignment.
func assignmentTarget(node ast.Node) *ast.NameRef {
	b, ok := node.(*ast.BinaryExpr)
	if !ok || !ast.IsAssignmentOp(b.Op) {
		return nil
	}
	switch l := ast.Deparenthesize(b.Left).(type) {
	case *ast.NameRef:
		return l
	case *ast.DotExpr:
		return l.Selector
	}
	return nil
}

// while drops facts about everything the loop assigns before the condition
// is evaluated, since the condition runs again after each iteration.
func (a *Analyzer) while(e *ast.WhileExpr) *types.Type {
	for _, n := range []ast.Node{e.Cond, e.Body} {
		if n == nil {
			continue
		}
		ast.Inspect(n, func(node ast.Node) bool {
			if name := assignmentTarget(node); name != nil {
				if d, _ := a.scope.Lookup(name.Name); d != nil {
					a.info = a.info.Clear(identityOf(d))
				}
			}
			return true
		})
	}

	onTrue, onFalse := a.cond(e.Cond)
	a.info = onTrue
	a.expr(e.Body, nil)
	a.info = onFalse
	return types.UnitType
}

func (a *Analyzer) returnExpr(e *ast.ReturnExpr) *types.Type {
	target := a.returnTarget(e)
	if target != nil {
		a.binding.returnTargets[e] = target
	}

	switch t := target.(type) {
	case *descriptors.FunctionDescriptor:
		if e.Value != nil {
			a.expr(e.Value, t.ReturnType)
			a.expect(e.Value, t.ReturnType)
		} else if t.ReturnType != nil && !t.ReturnType.IsError() && !t.ReturnType.Equals(types.UnitType) {
			a.addCompilerError(errors.TypeMismatch(t.ReturnType.String(), types.UnitType.String(), e.Pos, nodeLength(e)))
		}
	case *descriptors.AnonymousFunctionDescriptor:
		vt := types.UnitType
		if e.Value != nil {
			vt = a.expr(e.Value, nil)
		}
		a.lambdaResults[t.Decl] = a.commonType(a.lambdaResults[t.Decl], vt)
	default:
		a.expr(e.Value, nil)
	}
	return types.NothingType
}

// returnTarget finds what e returns from. Without a label that is the
// innermost function; with one, the innermost lambda carrying the label or
// function of that name.
func (a *Analyzer) returnTarget(e *ast.ReturnExpr) descriptors.Descriptor {
	for i := len(a.callables) - 1; i >= 0; i-- {
		switch c := a.callables[i].(type) {
		case *descriptors.FunctionDescriptor:
			if e.Label == nil || c.Name == e.Label.Value {
				return c
			}
		case *descriptors.AnonymousFunctionDescriptor:
			if e.Label != nil && c.HasLabel(e.Label.Value) {
				return c
			}
		}
	}
	if e.Label != nil {
		a.addCompilerError(errors.UnresolvedLabel(e.Label.Value, e.Label.Pos))
	} else {
		a.addCompilerError(errors.ReturnNotAllowed(e.Pos))
	}
	return nil
}
