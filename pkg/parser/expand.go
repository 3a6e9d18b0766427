package parser

import (
	"strconv"

	"github.com/yaklabco/csift/pkg/ast"
	"github.com/yaklabco/csift/pkg/source"
)

// ExpandBody deep-parses f's body into a statement tree using the
// token sequence it was shallow-parsed from. The transition is
// idempotent: expanding an already-expanded body returns the existing
// tree without touching the tokens.
func ExpandBody(data *source.Data, f *ast.FunctionDecl) (*ast.CompoundStmt, error) {
	return f.Body.Expand(func() (*ast.CompoundStmt, error) {
		p := &Parser{data: data}
		// Body.Begin is the token after the opening brace.
		p.goTo(f.Body.Begin - 1)
		return p.compoundStatement()
	})
}

func (p *Parser) compoundStatement() (*ast.CompoundStmt, error) {
	if !p.tok.IsPunct('{') {
		return nil, p.errorf("expecting '{' to start a block")
	}
	p.next()

	block := &ast.CompoundStmt{}
	for p.tok.Kind != source.TokEOF {
		if p.tok.IsPunct('}') {
			return block, nil
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	return nil, p.errorf("expecting '}' before end of file")
}

// statement parses one statement, or returns (nil, nil) for the empty
// statement ';'.
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.tok.IsPunct(';'):
		p.next()
		return nil, nil

	case p.tok.Kind == source.TokComment:
		p.next()
		return nil, nil

	case p.tok.Kind == source.TokKeyword:
		if source.Keyword(p.tok.I) == source.KeyReturn {
			return p.returnStatement()
		}
		return nil, p.errorf("not supported keyword %s", source.Keyword(p.tok.I))
	}

	return nil, p.errorf("expecting '}' or statement")
}

func (p *Parser) returnStatement() (*ast.ReturnStmt, error) {
	ret := &ast.ReturnStmt{}

	if p.next().Kind == source.TokEOF {
		return nil, p.errorf("expecting ';' or expression for return statement")
	}
	if !p.tok.IsPunct(';') {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		ret.Expr = expr
	}
	if !p.tok.IsPunct(';') {
		return nil, p.errorf("expecting ';' or expression for return statement")
	}
	p.next()
	return ret, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.additiveExpression()
}

func (p *Parser) additiveExpression() (ast.Expr, error) {
	expr, err := p.multiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.tok.IsPunct('+') || p.tok.IsPunct('-') {
		op := byte(p.tok.I)
		p.next()
		rhs, err := p.multiplicativeExpression()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Op: op, LHS: expr, RHS: rhs}
	}
	return expr, nil
}

func (p *Parser) multiplicativeExpression() (ast.Expr, error) {
	expr, err := p.primaryExpression()
	if err != nil {
		return nil, err
	}

	for p.tok.IsPunct('*') || p.tok.IsPunct('/') || p.tok.IsPunct('%') {
		op := byte(p.tok.I)
		p.next()
		rhs, err := p.primaryExpression()
		if err != nil {
			return nil, p.errorf("expecting expression after %q", rune(op))
		}
		expr = &ast.BinaryExpr{Op: op, LHS: expr, RHS: rhs}
	}
	return expr, nil
}

func (p *Parser) primaryExpression() (ast.Expr, error) {
	switch {
	case p.tok.IsPunct('('):
		p.next()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.tok.IsPunct(')') {
			return nil, p.errorf("expected ')' to finish expression")
		}
		p.next()
		return expr, nil

	case p.tok.IsPunct('*') || p.tok.IsPunct('&') ||
		p.tok.IsPunct('+') || p.tok.IsPunct('-') ||
		p.tok.IsPunct('!') || p.tok.IsPunct('~'):
		op := byte(p.tok.I)
		p.next()
		operand, err := p.primaryExpression()
		if err != nil {
			return nil, p.errorf("expected primary expression after %q", rune(op))
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil

	case p.tok.Kind == source.TokNumericConstant:
		text := p.data.IDText(p.tok)
		// Base 0 follows the literal's own prefix: 0x, 0b, or a
		// leading 0 for octal.
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, p.errorf("invalid numeric literal %q", text)
		}
		p.next()
		return &ast.Literal{Value: int(value)}, nil
	}

	return nil, p.errorf("expecting expression")
}
