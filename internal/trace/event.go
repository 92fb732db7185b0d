package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopeFile                    // one source file
	ScopePass                    // parse, build, relax, render
	ScopeNode                    // document or syntax nodes
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopeFile: "file", ScopePass: "pass", ScopeNode: "node"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 for point events
	ParentID uint64 // 0 for root spans
	Job      int    // file position in a parallel run, 0 outside one
	Name     string // "fmt", "file:lib/a.ex", "relax", "cache-hit"
	Detail   string
	Extra    map[string]string
}
