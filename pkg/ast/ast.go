// Package ast defines the statement and expression tree produced by
// the structural parser. The tree is strictly owned top-down: dropping
// a FunctionDecl drops everything beneath it.
package ast

import "github.com/yaklabco/csift/pkg/source"

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Literal is an integer constant leaf.
type Literal struct {
	Value int
}

// UnaryExpr is a prefix operator applied to one operand.
// Op is one of * & + - ! ~.
type UnaryExpr struct {
	Op      byte
	Operand Expr
}

// BinaryExpr is an infix operator with two operands.
// Op is one of + - * / %.
type BinaryExpr struct {
	Op  byte
	LHS Expr
	RHS Expr
}

func (*Literal) exprNode()    {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) exprNode() {}

// ReturnStmt is a return statement; Expr is nil for a bare return.
type ReturnStmt struct {
	Expr Expr
}

// CompoundStmt is a `{ }` block: a sequence of statements.
type CompoundStmt struct {
	Stmts []Stmt
}

func (*ReturnStmt) stmtNode()   {}
func (*CompoundStmt) stmtNode() {}

// Param is a single function parameter. Pointers counts the leading
// `*` markers; Name may be empty for unnamed parameters.
type Param struct {
	Type     source.Keyword
	Pointers int
	Name     string
}

// ParamList is a function's parameter list (possibly empty).
type ParamList struct {
	Params []*Param
}

// FunctionDecl is a top-level function declaration. It exclusively
// owns its parameter list and body.
type FunctionDecl struct {
	Type   source.Keyword
	Name   string
	Pos    source.Pos
	Params *ParamList
	Body   *FunctionBody
}
