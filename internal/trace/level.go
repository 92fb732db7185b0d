package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // ring only, dumped when a run fails
	LevelPhase        // driver + file boundaries
	LevelDetail       // formatter passes
	LevelDebug        // everything including node-level
)

// levels maps each level to its flag name and the finest scope it lets through.
var levels = [...]struct {
	name  string
	until Scope
}{
	LevelOff:    {"off", 0},
	LevelError:  {"error", ScopeFile},
	LevelPhase:  {"phase", ScopeFile},
	LevelDetail: {"detail", ScopePass},
	LevelDebug:  {"debug", ScopeNode},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return "unknown"
}

// ParseLevel converts a --trace-level value, case-insensitively.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(s)
	for l, lv := range levels {
		if lv.name == s {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
}

// ShouldEmit reports whether events of scope are recorded at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return int(l) < len(levels) && scope <= levels[l].until
}
