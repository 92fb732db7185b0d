package lexer

import (
	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

// maxTokenLength bounds a single token; past it the lexer gives up on the file.
const maxTokenLength = 1 << 16

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
	}
}
