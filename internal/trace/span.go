package trace

import (
	"context"
	"sync/atomic"
	"time"
)

// Pass names one stage of the per-file formatting pipeline.
type Pass string

const (
	PassParse  Pass = "parse"
	PassBuild  Pass = "build"
	PassRelax  Pass = "relax"
	PassRender Pass = "render"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span is an open begin/end pair. A Span from a disabled tracer is inert.
type Span struct {
	tracer  Tracer
	head    Event // begin event; End reuses its identity fields
	started time.Time
	extra   map[string]string
}

// begin starts a span under parent (0 for a root span).
func begin(t Tracer, scope Scope, name string, parent uint64, job int) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	now := time.Now()
	s := &Span{
		tracer: t,
		head: Event{
			Time:     now,
			Seq:      NextSeq(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			Job:      job,
			Name:     name,
		},
		started: now,
	}
	ev := s.head
	t.Emit(&ev)
	return s
}

// BeginFile opens the span for one source file; its name is "file:<path>".
func BeginFile(ctx context.Context, path string) (context.Context, *Span) {
	return BeginFromContext(ctx, ScopeFile, "file:"+path)
}

// BeginPass opens a pass span under the file span carried by ctx.
// Passes are leaves, so no derived context is returned.
func BeginPass(ctx context.Context, p Pass) *Span {
	_, span := BeginFromContext(ctx, ScopePass, string(p))
	return span
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// End emits the end event and returns the span's duration.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.started)
	ev := s.head
	ev.Time = time.Now()
	ev.Seq = NextSeq()
	ev.Kind = KindSpanEnd
	ev.Detail = detail
	ev.Extra = s.extra
	s.tracer.Emit(&ev)
	return dur
}

// EndErr ends the span with "error: ..." as detail, or an empty detail on nil.
func (s *Span) EndErr(err error) time.Duration {
	if err == nil {
		return s.End("")
	}
	return s.End("error: " + err.Error())
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.head.SpanID
}

// Note emits a point event under the span and job carried by ctx.
func Note(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: CurrentSpan(ctx),
		Job:      CurrentJob(ctx),
		Name:     name,
		Detail:   detail,
	})
}
