package format

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/doc"
)

// call печатает локальный, удалённый или анонимный вызов. Вызов без скобок
// остаётся без скобок, если функция в списке locals, у вызова есть
// do-блок или он стоит под `@`; иначе скобки добавляются.
func (p *printer) call(id ast.ExprID, d *ast.ExprCallData, underAt bool) doc.Document {
	arity := len(d.Args)
	if d.Do != nil {
		arity++
	}
	callee, local := p.callee(id, d)
	args := p.items(d.Args)

	var head doc.Document
	switch {
	case d.Parens:
		head = doc.Concat(callee, container("(", ")", args))
	case len(args) == 0:
		head = callee
	case underAt || d.Do != nil || (local != "" && p.localWithoutParens(local, arity)):
		head = doc.GroupOf(doc.Concat(callee, doc.Str(" "), doc.NestAtCursor(commaList(args))))
	default:
		head = doc.Concat(callee, container("(", ")", args))
	}
	if d.Do != nil {
		return doc.Concat(head, p.doBlock(d.Do))
	}
	return head
}

// callee возвращает документ вызываемого и имя для локального вызова.
func (p *printer) callee(call ast.ExprID, d *ast.ExprCallData) (doc.Document, string) {
	if ident, ok := p.b.Exprs.Ident(d.Callee); ok {
		return doc.Str(ident.Name), ident.Name
	}
	if dot, ok := p.b.Exprs.Dot(d.Callee); ok {
		name := dot.Name
		if name != "" {
			name = p.renamedFunction(dot.Target, name, len(d.Args), call)
		}
		return doc.Concat(p.expr(dot.Target), doc.Str("."+name)), ""
	}
	return p.expr(d.Callee), ""
}
