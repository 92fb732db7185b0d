package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"relaxfmt/internal/diag"
)

// AnyArity matches a local call with any number of arguments (`name/*`).
const AnyArity = -1

// Local is a function name that may be called without parentheses.
type Local struct {
	Name  string
	Arity int
}

func (l Local) String() string {
	if l.Arity == AnyArity {
		return l.Name + "/*"
	}
	return l.Name + "/" + strconv.Itoa(l.Arity)
}

// ParseLocal parses `name/arity` or `name/*`.
func ParseLocal(s string) (Local, error) {
	name, arity, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || name == "" {
		return Local{}, fmt.Errorf("invalid local %q: expected name/arity", s)
	}
	if arity == "*" {
		return Local{Name: name, Arity: AnyArity}, nil
	}
	n, err := strconv.Atoi(arity)
	if err != nil || n < 0 {
		return Local{}, fmt.Errorf("invalid local %q: arity must be a non-negative integer or *", s)
	}
	return Local{Name: name, Arity: n}, nil
}

// DefaultLocals is the set of kernel macros written without parentheses.
func DefaultLocals() []Local {
	names := []string{
		"def", "defp", "defmodule", "defmacro", "defmacrop",
		"import", "alias", "require", "use",
		"defstruct", "defdelegate", "defexception", "defimpl", "defprotocol",
		"defoverridable", "defguard", "defguardp",
		"raise", "reraise", "if", "unless", "quote", "receive",
	}
	out := make([]Local, len(names))
	for i, n := range names {
		out[i] = Local{Name: n, Arity: AnyArity}
	}
	return out
}

type Options struct {
	// LocalsWithoutParens extends DefaultLocals.
	LocalsWithoutParens []Local
	// RenameDeprecatedAt is a version such as "1.5"; empty disables renames.
	RenameDeprecatedAt string
	// Highlight wraps literals into color tags.
	Highlight bool
	// Reporter receives FMT diagnostics about applied renames.
	Reporter diag.Reporter
}

// ValidVersion reports whether v is usable as RenameDeprecatedAt.
func ValidVersion(v string) bool {
	return semver.IsValid(canonicalVersion(v))
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
