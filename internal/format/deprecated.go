package format

import (
	"fmt"

	"golang.org/x/mod/semver"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
)

type rename struct {
	module string
	from   string
	arity  int
	to     string
	since  string
}

// Удалённые вызовы, переименованные в новых версиях языка.
var deprecatedRenames = []rename{
	{"Enum", "uniq", 2, "uniq_by", "v1.2"},
	{"Enum", "partition", 2, "split_with", "v1.4"},
	{"String", "strip", 1, "trim", "v1.5"},
	{"String", "lstrip", 1, "trim_leading", "v1.5"},
	{"String", "rstrip", 1, "trim_trailing", "v1.5"},
	{"String", "to_char_list", 1, "to_charlist", "v1.5"},
	{"Atom", "to_char_list", 1, "to_charlist", "v1.5"},
	{"Integer", "to_char_list", AnyArity, "to_charlist", "v1.5"},
	{"Float", "to_char_list", 1, "to_charlist", "v1.5"},
	{"List", "to_char_list", 1, "to_charlist", "v1.5"},
}

// renamedFunction возвращает новое имя для Module.fun/arity, если
// переименование уже действует в целевой версии.
func (p *printer) renamedFunction(target ast.ExprID, name string, arity int, call ast.ExprID) string {
	if p.renameAt == "" {
		return name
	}
	alias, ok := p.b.Exprs.Alias(target)
	if !ok || len(alias.Segments) != 1 {
		return name
	}
	module := alias.Segments[0]
	for _, r := range deprecatedRenames {
		if r.module != module || r.from != name {
			continue
		}
		if r.arity != AnyArity && r.arity != arity {
			continue
		}
		if semver.Compare(r.since, p.renameAt) > 0 {
			continue
		}
		diag.ReportInfo(p.opts.Reporter, diag.FmtDeprecatedRename, p.b.Exprs.Get(call).Span,
			fmt.Sprintf("%s.%s/%d is deprecated since %s, renamed to %s.%s",
				module, name, arity, semver.Canonical(r.since)[1:], module, r.to)).
			Emit()
		return r.to
	}
	return name
}
