package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/csift/pkg/ast"
	"github.com/yaklabco/csift/pkg/lexer"
	"github.com/yaklabco/csift/pkg/parser"
	"github.com/yaklabco/csift/pkg/source"
)

func lex(t *testing.T, src string) *source.Data {
	t.Helper()
	data, err := lexer.New(lexer.DefaultOptions()).LexReader("test.cpp", strings.NewReader(src))
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	return data
}

func parse(t *testing.T, src string) (*source.Data, *parser.Result) {
	t.Helper()
	data := lex(t, src)
	res, err := parser.New(0).Parse(data)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return data, res
}

func TestParseSingleFunction(t *testing.T) {
	t.Parallel()

	_, res := parse(t, "int main() { return 0; }")

	if len(res.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(res.Functions))
	}
	f := res.Functions[0]
	if f.Name != "main" {
		t.Errorf("name = %q, want main", f.Name)
	}
	if f.Type != source.KeyInt {
		t.Errorf("type = %v, want int", f.Type)
	}
	if len(f.Params.Params) != 0 {
		t.Errorf("params = %d, want 0", len(f.Params.Params))
	}
	if f.Body.IsExpanded() {
		t.Error("shallow parse must not expand the body")
	}

	// Tokens: int=0 main=1 (=2 )=3 {=4 return=5 0=6 ;=7 }=8 EOF=9.
	if f.Body.Begin != 5 || f.Body.End != 8 {
		t.Errorf("body range = [%d, %d), want [5, 8)", f.Body.Begin, f.Body.End)
	}
}

func TestParseParameters(t *testing.T) {
	t.Parallel()

	_, res := parse(t, "void copy(int n, char **src, float) {}")

	if len(res.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(res.Functions))
	}
	params := res.Functions[0].Params.Params
	if len(params) != 3 {
		t.Fatalf("got %d params, want 3", len(params))
	}

	expected := []struct {
		typ      source.Keyword
		pointers int
		name     string
	}{
		{source.KeyInt, 0, "n"},
		{source.KeyChar, 2, "src"},
		{source.KeyFloat, 0, ""},
	}
	for i, want := range expected {
		p := params[i]
		if p.Type != want.typ || p.Pointers != want.pointers || p.Name != want.name {
			t.Errorf("param %d = {%v %d %q}, want {%v %d %q}",
				i, p.Type, p.Pointers, p.Name, want.typ, want.pointers, want.name)
		}
	}
}

func TestParseMultipleFunctions(t *testing.T) {
	t.Parallel()

	src := `
// entry point
int main() { return 0; }

void helper(int x) { ; }
`
	_, res := parse(t, src)

	if len(res.Functions) != 2 {
		t.Fatalf("got %d functions, want 2", len(res.Functions))
	}
	if res.Functions[0].Name != "main" || res.Functions[1].Name != "helper" {
		t.Errorf("names = %q, %q", res.Functions[0].Name, res.Functions[1].Name)
	}
}

func TestParseSkipsDirectives(t *testing.T) {
	t.Parallel()

	src := "#include <stdio.h>\n#define X 1\nint main() { return 0; }\n"
	_, res := parse(t, src)

	if len(res.Functions) != 1 || res.Functions[0].Name != "main" {
		t.Fatalf("functions = %+v", res.Functions)
	}
}

func TestParseNestedBraces(t *testing.T) {
	t.Parallel()

	data, res := parse(t, "int f() { { ; { ; } } return 1; }")

	if len(res.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(res.Functions))
	}
	body := res.Functions[0].Body
	end := data.Tokens[body.End]
	if !end.IsPunct('}') {
		t.Errorf("body end token = %+v, want '}'", end)
	}
	// The end brace is the last token before EOF.
	if body.End != len(data.Tokens)-2 {
		t.Errorf("body end = %d, want %d", body.End, len(data.Tokens)-2)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"stray identifier", "x;", "unsupported declaration"},
		{"class not supported", "class C {};", "unsupported declaration"},
		{"missing name", "int () {}", "expecting identifier"},
		{"missing paren", "int f {}", "expecting '('"},
		{"unclosed params", "int f(", "expecting ')' before end of file"},
		{"bad param", "int f(;) {}", "expecting ')' or type"},
		{"missing brace", "int f() return;", "expecting '{'"},
		{"unbalanced body", "int f() { {", "expecting '}' before end of file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parser.New(0).Parse(lex(t, tt.src))
			if err == nil {
				t.Fatalf("parse %q: expected error", tt.src)
			}

			var serr *source.Error
			if !errors.As(err, &serr) {
				t.Fatalf("error %v is not a *source.Error", err)
			}
			if !strings.Contains(serr.Msg, tt.msg) {
				t.Errorf("error %q does not mention %q", serr.Msg, tt.msg)
			}
		})
	}
}

func TestExpandBody(t *testing.T) {
	t.Parallel()

	data, res := parse(t, "int main() { ; return 2 + 3 * 4; }")
	f := res.Functions[0]

	block, err := parser.ExpandBody(data, f)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !f.Body.IsExpanded() {
		t.Fatal("body still unexpanded after ExpandBody")
	}

	// The empty statement contributes nothing; one return remains.
	if len(block.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(block.Stmts))
	}
	ret, ok := block.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ReturnStmt", block.Stmts[0])
	}

	// 2 + 3 * 4 parses as 2 + (3 * 4).
	add, ok := ret.Expr.(*ast.BinaryExpr)
	if !ok || add.Op != '+' {
		t.Fatalf("return expr = %#v, want '+' binary", ret.Expr)
	}
	if lit, ok := add.LHS.(*ast.Literal); !ok || lit.Value != 2 {
		t.Errorf("lhs = %#v, want literal 2", add.LHS)
	}
	mul, ok := add.RHS.(*ast.BinaryExpr)
	if !ok || mul.Op != '*' {
		t.Fatalf("rhs = %#v, want '*' binary", add.RHS)
	}
}

func TestExpandBodyIdempotent(t *testing.T) {
	t.Parallel()

	data, res := parse(t, "int main() { return 1; }")
	f := res.Functions[0]

	first, err := parser.ExpandBody(data, f)
	if err != nil {
		t.Fatal(err)
	}
	second, err := parser.ExpandBody(data, f)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("re-expansion built a new tree instead of returning the existing one")
	}
}

func TestExpandUnaryAndParens(t *testing.T) {
	t.Parallel()

	data, res := parse(t, "int main() { return -(5 - 8); }")
	f := res.Functions[0]

	block, err := parser.ExpandBody(data, f)
	if err != nil {
		t.Fatal(err)
	}

	ret := block.Stmts[0].(*ast.ReturnStmt)
	neg, ok := ret.Expr.(*ast.UnaryExpr)
	if !ok || neg.Op != '-' {
		t.Fatalf("expr = %#v, want unary '-'", ret.Expr)
	}
	sub, ok := neg.Operand.(*ast.BinaryExpr)
	if !ok || sub.Op != '-' {
		t.Fatalf("operand = %#v, want '-' binary", neg.Operand)
	}
}

func TestExpandBareReturn(t *testing.T) {
	t.Parallel()

	data, res := parse(t, "void f() { return; }")
	block, err := parser.ExpandBody(data, res.Functions[0])
	if err != nil {
		t.Fatal(err)
	}
	ret := block.Stmts[0].(*ast.ReturnStmt)
	if ret.Expr != nil {
		t.Errorf("bare return carries expr %#v", ret.Expr)
	}
}

func TestExpandNumericBases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		expected int
	}{
		{"int main() { return 0x1A; }", 26},
		{"int main() { return 0b101; }", 5},
		{"int main() { return 017; }", 15},
		{"int main() { return 0; }", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			data, res := parse(t, tt.src)
			block, err := parser.ExpandBody(data, res.Functions[0])
			if err != nil {
				t.Fatal(err)
			}
			ret := block.Stmts[0].(*ast.ReturnStmt)
			lit, ok := ret.Expr.(*ast.Literal)
			if !ok {
				t.Fatalf("expr = %#v, want literal", ret.Expr)
			}
			if lit.Value != tt.expected {
				t.Errorf("value = %d, want %d", lit.Value, tt.expected)
			}
		})
	}
}

func TestExpandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unsupported keyword", "int main() { while; }", "not supported keyword while"},
		{"missing operand", "int main() { return 1 + ; }", "expecting expression"},
		{"missing paren", "int main() { return (1; }", "expected ')'"},
		{"float literal", "int main() { return 3.14; }", "invalid numeric literal"},
		{"missing semicolon", "int main() { return 1 }", "expecting ';'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, res := parse(t, tt.src)
			_, err := parser.ExpandBody(data, res.Functions[0])
			if err == nil {
				t.Fatal("expected expand error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}
