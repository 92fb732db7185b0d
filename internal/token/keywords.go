package token

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"nil":   KwNil,
	"do":    KwDo,
	"end":   KwEnd,
	"and":   KwAnd,
	"or":    KwOr,
	"not":   KwNot,
	"in":    KwIn,
	"when":  KwWhen,
}

// LookupKeyword returns the keyword kind for ident. Lookup is case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
