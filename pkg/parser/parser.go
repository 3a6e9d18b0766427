// Package parser implements the two-phase structural parse. The
// shallow pass recognizes top-level function declarations and records
// each body as an unparsed token range; the deep pass expands a single
// body into a statement tree on demand.
package parser

import (
	"github.com/yaklabco/csift/pkg/ast"
	"github.com/yaklabco/csift/pkg/source"
)

// Result is the shallow-parse output for one file.
type Result struct {
	// Path is the source file path.
	Path string

	// Functions are the recognized top-level function declarations,
	// in source order, with unexpanded bodies.
	Functions []*ast.FunctionDecl
}

// Parser walks a token sequence. It is not safe for concurrent use;
// the pipeline creates one per task.
type Parser struct {
	seqIndex int
	data     *source.Data
	tokI     int
	tok      source.Token
}

// New creates a Parser that records seqIndex (the corpus store index
// of the sequence it will parse) into every function body it emits.
func New(seqIndex int) *Parser {
	return &Parser{seqIndex: seqIndex}
}

// Parse runs the shallow pass over data. Function bodies are scanned
// only for their matching closing brace; statements inside them are
// not parsed.
func (p *Parser) Parse(data *source.Data) (*Result, error) {
	p.data = data
	p.goTo(-1)

	res := &Result{Path: data.Path}
	for p.next().Kind != source.TokEOF {
		switch p.tok.Kind {
		case source.TokComment:
			continue
		case source.TokPPBegin:
			p.skipDirective()
			continue
		}

		f, err := p.functionDefinition()
		if err != nil {
			return nil, err
		}
		res.Functions = append(res.Functions, f)
	}
	return res, nil
}

// skipDirective advances past a bracketed preprocessor span. Directives
// carry no structure the shallow pass cares about.
func (p *Parser) skipDirective() {
	for p.tok.Kind != source.TokPPEnd && p.tok.Kind != source.TokEOF {
		p.next()
	}
}

func (p *Parser) functionDefinition() (*ast.FunctionDecl, error) {
	if !p.tok.IsBuiltinType() {
		return nil, p.errorf("unsupported declaration at top level")
	}

	f := &ast.FunctionDecl{
		Type: source.Keyword(p.tok.I),
		Pos:  p.tok.Pos,
	}

	if p.next().Kind != source.TokIdentifier {
		return nil, p.errorf("expecting identifier for function")
	}
	f.Name = p.data.IDText(p.tok)

	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	f.Params = params

	body, err := p.bodyFast()
	if err != nil {
		return nil, err
	}
	f.Body = body

	return f, nil
}

func (p *Parser) paramList() (*ast.ParamList, error) {
	ps := &ast.ParamList{}

	if !p.next().IsPunct('(') {
		return nil, p.errorf("expecting '('")
	}
	for p.next().Kind != source.TokEOF {
		switch {
		case p.tok.IsPunct(')'):
			return ps, nil

		case p.tok.IsBuiltinType():
			param := &ast.Param{Type: source.Keyword(p.tok.I)}
			p.next()

			for p.tok.IsPunct('*') {
				param.Pointers++
				p.next()
			}

			if p.tok.Kind == source.TokIdentifier {
				param.Name = p.data.IDText(p.tok)
				p.next()
				if p.tok.IsPunct(')') {
					ps.Params = append(ps.Params, param)
					return ps, nil
				}
				if !p.tok.IsPunct(',') {
					return nil, p.errorf("expecting ',' or ')' after param name")
				}
			} else if p.tok.IsPunct(')') {
				ps.Params = append(ps.Params, param)
				return ps, nil
			} else if !p.tok.IsPunct(',') {
				return nil, p.errorf("expecting ',', ')', or param name after param type")
			}

			ps.Params = append(ps.Params, param)

		default:
			return nil, p.errorf("expecting ')' or type")
		}
	}

	return nil, p.errorf("expecting ')' before end of file")
}

// bodyFast records the body's token range without parsing statements.
// Each nested '{' increments the depth; the '}' at depth zero ends the
// range.
func (p *Parser) bodyFast() (*ast.FunctionBody, error) {
	if !p.next().IsPunct('{') {
		return nil, p.errorf("expecting '{'")
	}
	begin := p.tokI + 1

	depth := 0
	for p.next().Kind != source.TokEOF {
		switch {
		case p.tok.IsPunct('}'):
			if depth == 0 {
				return ast.NewBody(p.seqIndex, begin, p.tokI), nil
			}
			depth--
		case p.tok.IsPunct('{'):
			depth++
		}
	}

	return nil, p.errorf("expecting '}' before end of file")
}

// goTo positions the parser at token index i; out-of-range indexes
// read as EOF.
func (p *Parser) goTo(i int) source.Token {
	p.tokI = i
	if i >= 0 && i < len(p.data.Tokens) {
		p.tok = p.data.Tokens[i]
	} else {
		p.tok = source.Token{Kind: source.TokEOF}
	}
	return p.tok
}

func (p *Parser) next() source.Token {
	return p.goTo(p.tokI + 1)
}

func (p *Parser) errorf(format string, args ...any) *source.Error {
	return source.Errorf(p.data.Path, p.tok.Pos, format, args...)
}
