package parser

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/lexer"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

// maxDepth bounds expression nesting.
const maxDepth = 10_000

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	File ast.FileID
	// Ok is false when a syntax error stopped the parse; File is then partial.
	Ok bool
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	depth    int
	// noDo > 0 внутри аргументов вызова без скобок: do-блок принадлежит
	// внешнему вызову.
	noDo int
	// claimedAt — начало токена, чьи комментарии уже забрал список операторов.
	claimedAt  uint32
	hasClaimed bool
}

// bailout прерывает разбор после первой ошибки.
type bailout struct{}

// ParseFile — входная точка для разбора одного файла.
func ParseFile(file *source.File, arenas *ast.Builder, opts Options) (res Result) {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	start := source.Span{File: file.ID}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(start),
		opts:     opts,
		lastSpan: start,
	}
	res.File = p.file

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			res.Ok = false
		}
	}()

	c := p.parseBlockContents(func(token.Token) bool { return false })
	if len(c.Clauses) > 0 {
		p.failAt(diag.SynUnexpectedToken, c.Clauses[0].Span, "'->' clauses are only allowed inside fn or do-blocks")
	}
	f := arenas.Files.Get(p.file)
	f.Body = c.Body
	f.Span = start.Cover(p.lx.Peek().Span)
	res.Ok = true
	return res
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > maxDepth {
		p.fail(diag.SynTooDeep, "expression nesting too deep")
	}
}

func (p *Parser) leave() {
	p.depth--
}
