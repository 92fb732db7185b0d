package trace

import "context"

// ctxKey is the key type for storing Tracer in context.
type ctxKey struct{}

// FromContext extracts the Tracer from context.
// If not found, returns Nop tracer.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches a Tracer to context.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

type spanCtxKey struct{}

// CurrentSpan returns the ID of the active span stored in ctx, or 0.
func CurrentSpan(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	if id, ok := ctx.Value(spanCtxKey{}).(uint64); ok {
		return id
	}
	return 0
}

// WithSpan records span as the parent for spans begun from the returned context.
func WithSpan(ctx context.Context, span *Span) context.Context {
	return context.WithValue(ctx, spanCtxKey{}, span.ID())
}

type jobCtxKey struct{}

// WithJob tags events begun from ctx with a 1-based job number
// (the file's position in a fmt run).
func WithJob(ctx context.Context, job int) context.Context {
	return context.WithValue(ctx, jobCtxKey{}, job)
}

// CurrentJob returns the job number stored in ctx, or 0.
func CurrentJob(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	job, _ := ctx.Value(jobCtxKey{}).(int)
	return job
}

// BeginFromContext starts a span whose tracer, parent and job come from ctx
// and returns a context carrying the new span.
func BeginFromContext(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	span := begin(FromContext(ctx), scope, name, CurrentSpan(ctx), CurrentJob(ctx))
	return WithSpan(ctx, span), span
}
