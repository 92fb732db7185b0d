// Package trace provides the tracing subsystem of relaxfmt.
//
// Tracing is the tool's logging layer: every stage of a formatting run
// (driver, file, pass) can report begin/end spans and point events to a
// stream, to an in-memory ring buffer, or to both.
//
// # Usage
//
//	relaxfmt fmt --trace=- --trace-level=detail lib/
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only crash dumps from the ring buffer
//   - LevelPhase: driver and per-file boundaries
//   - LevelDetail: formatter passes (parse, build, relax, render)
//   - LevelDebug: everything, including per-node events
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	ctx, file := trace.BeginFile(ctx, path)
//	defer file.End("")
//	span := trace.BeginPass(ctx, trace.PassParse)
//	span.End("")
package trace
