// Package vm is a toy evaluator that executes a program's main
// function against an integer operand stack. Its real job is to
// demonstrate deep-parse-on-demand: the body of main is expanded from
// its recorded token range the first time it runs.
package vm

import (
	"errors"
	"fmt"

	"github.com/yaklabco/csift/pkg/ast"
	"github.com/yaklabco/csift/pkg/corpus"
	"github.com/yaklabco/csift/pkg/parser"
)

// ErrNoMain is returned when no main function exists in the corpus.
var ErrNoMain = errors.New("no main function found")

// ErrMultipleMain is returned when main is ambiguous.
var ErrMultipleMain = errors.New("multiple main functions found")

// VM evaluates expressions with an integer operand stack.
type VM struct {
	store *corpus.Store
	stack []int
}

// New creates a VM reading from store.
func New(store *corpus.Store) *VM {
	return &VM{store: store}
}

// Run locates the single main function across every file's shallow
// parse output, expands its body if needed, and executes it. The
// result is the final stack top, or zero for an empty stack. The
// returned code is non-zero when main is missing or ambiguous.
func (v *VM) Run() (int, error) {
	var candidates []*ast.FunctionDecl
	for _, res := range v.store.Parses() {
		for _, f := range res.Functions {
			if f.Name == "main" {
				candidates = append(candidates, f)
			}
		}
	}

	switch len(candidates) {
	case 0:
		return 1, ErrNoMain
	case 1:
		// Fall through to execution.
	default:
		return 1, fmt.Errorf("%w: %d candidates", ErrMultipleMain, len(candidates))
	}

	f := candidates[0]
	data := v.store.FetchTokens(f.Body.Seq)
	if data == nil {
		return 1, fmt.Errorf("no token sequence stored for %s", f.Name)
	}

	block, err := parser.ExpandBody(data, f)
	if err != nil {
		return 1, err
	}

	v.stack = v.stack[:0]
	v.execStmt(block)

	if len(v.stack) > 0 {
		return v.stack[len(v.stack)-1], nil
	}
	return 0, nil
}

func (v *VM) execStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.CompoundStmt:
		for _, stmt := range s.Stmts {
			v.execStmt(stmt)
		}
	case *ast.ReturnStmt:
		// The return value stays on the stack.
		if s.Expr != nil {
			v.execExpr(s.Expr)
		}
	}
}

func (v *VM) execExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
		v.stack = append(v.stack, e.Value)

	case *ast.UnaryExpr:
		v.execExpr(e.Operand)
		if len(v.stack) == 0 {
			return
		}
		top := len(v.stack) - 1
		switch e.Op {
		case '-':
			v.stack[top] = -v.stack[top]
		case '!':
			if v.stack[top] == 0 {
				v.stack[top] = 1
			} else {
				v.stack[top] = 0
			}
		case '~':
			v.stack[top] = ^v.stack[top]
		case '*', '&', '+':
			// Pointers are not modeled; unary plus is a no-op.
		}

	case *ast.BinaryExpr:
		v.execExpr(e.LHS)
		v.execExpr(e.RHS)
		if len(v.stack) < 2 {
			return
		}
		x := v.stack[len(v.stack)-2]
		y := v.stack[len(v.stack)-1]
		switch e.Op {
		case '+':
			x += y
		case '-':
			x -= y
		case '*':
			x *= y
		case '/':
			x /= y
		case '%':
			x %= y
		}
		v.stack = v.stack[:len(v.stack)-1]
		v.stack[len(v.stack)-1] = x
	}
}
