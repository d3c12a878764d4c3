package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	// Parent is the enclosing node, or nil for a File and for nodes that
	// were never linked.
	Parent() Node
	setParent(Node)
}

type parentLink struct {
	parent Node
}

func (l *parentLink) Parent() Node       { return l.parent }
func (l *parentLink) setParent(par Node) { l.parent = par }

func (f *File) NodePos() Position    { return f.Pos }
func (f *File) NodeEndPos() Position { return f.EndPos }
func (*File) NodeType() NodeType     { return FILE }

func (e *EnumDecl) NodePos() Position    { return e.Pos }
func (e *EnumDecl) NodeEndPos() Position { return e.EndPos }
func (*EnumDecl) NodeType() NodeType     { return ENUM_DECL }

func (c *ClassDecl) NodePos() Position    { return c.Pos }
func (c *ClassDecl) NodeEndPos() Position { return c.EndPos }
func (*ClassDecl) NodeType() NodeType     { return CLASS_DECL }

func (b *BuilderDecl) NodePos() Position    { return b.Pos }
func (b *BuilderDecl) NodeEndPos() Position { return b.EndPos }
func (*BuilderDecl) NodeType() NodeType     { return BUILDER_DECL }

func (f *FunDecl) NodePos() Position    { return f.Pos }
func (f *FunDecl) NodeEndPos() Position { return f.EndPos }
func (*FunDecl) NodeType() NodeType     { return FUN_DECL }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (p *PropertyDecl) NodePos() Position    { return p.Pos }
func (p *PropertyDecl) NodeEndPos() Position { return p.EndPos }
func (*PropertyDecl) NodeType() NodeType     { return PROPERTY_DECL }

func (t *TypeRef) NodePos() Position    { return t.Pos }
func (t *TypeRef) NodeEndPos() Position { return t.EndPos }
func (*TypeRef) NodeType() NodeType     { return TYPE_REF }

func (be *BadExpr) NodePos() Position    { return be.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (n *NameRef) NodePos() Position    { return n.Pos }
func (n *NameRef) NodeEndPos() Position { return n.EndPos }
func (*NameRef) NodeType() NodeType     { return NAME_REF }

func (l *Literal) NodePos() Position    { return l.Pos }
func (l *Literal) NodeEndPos() Position { return l.EndPos }
func (*Literal) NodeType() NodeType     { return LITERAL }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (i *IsExpr) NodePos() Position    { return i.Pos }
func (i *IsExpr) NodeEndPos() Position { return i.EndPos }
func (*IsExpr) NodeType() NodeType     { return IS_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (d *DotExpr) NodePos() Position    { return d.Pos }
func (d *DotExpr) NodeEndPos() Position { return d.EndPos }
func (*DotExpr) NodeType() NodeType     { return DOT_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (l *LambdaExpr) NodePos() Position    { return l.Pos }
func (l *LambdaExpr) NodeEndPos() Position { return l.EndPos }
func (*LambdaExpr) NodeType() NodeType     { return LAMBDA_EXPR }

func (i *IfExpr) NodePos() Position    { return i.Pos }
func (i *IfExpr) NodeEndPos() Position { return i.EndPos }
func (*IfExpr) NodeType() NodeType     { return IF_EXPR }

func (w *WhenExpr) NodePos() Position    { return w.Pos }
func (w *WhenExpr) NodeEndPos() Position { return w.EndPos }
func (*WhenExpr) NodeType() NodeType     { return WHEN_EXPR }

func (wb *WhenBranch) NodePos() Position    { return wb.Pos }
func (wb *WhenBranch) NodeEndPos() Position { return wb.EndPos }
func (*WhenBranch) NodeType() NodeType      { return WHEN_BRANCH }

func (wc *WhenCondition) NodePos() Position    { return wc.Pos }
func (wc *WhenCondition) NodeEndPos() Position { return wc.EndPos }
func (*WhenCondition) NodeType() NodeType      { return WHEN_CONDITION }

func (t *TryExpr) NodePos() Position    { return t.Pos }
func (t *TryExpr) NodeEndPos() Position { return t.EndPos }
func (*TryExpr) NodeType() NodeType     { return TRY_EXPR }

func (c *CatchClause) NodePos() Position    { return c.Pos }
func (c *CatchClause) NodeEndPos() Position { return c.EndPos }
func (*CatchClause) NodeType() NodeType     { return CATCH_CLAUSE }

func (w *WhileExpr) NodePos() Position    { return w.Pos }
func (w *WhileExpr) NodeEndPos() Position { return w.EndPos }
func (*WhileExpr) NodeType() NodeType     { return WHILE_EXPR }

func (r *ReturnExpr) NodePos() Position    { return r.Pos }
func (r *ReturnExpr) NodeEndPos() Position { return r.EndPos }
func (*ReturnExpr) NodeType() NodeType     { return RETURN_EXPR }

func (t *ThrowExpr) NodePos() Position    { return t.Pos }
func (t *ThrowExpr) NodeEndPos() Position { return t.EndPos }
func (*ThrowExpr) NodeType() NodeType     { return THROW_EXPR }

func (b *BuildExpr) NodePos() Position    { return b.Pos }
func (b *BuildExpr) NodeEndPos() Position { return b.EndPos }
func (*BuildExpr) NodeType() NodeType     { return BUILD_EXPR }