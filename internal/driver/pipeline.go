package driver

import (
	"context"
	"strconv"

	"fortio.org/safecast"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/doc"
	"relaxfmt/internal/format"
	"relaxfmt/internal/parser"
	"relaxfmt/internal/relax"
	"relaxfmt/internal/render"
	"relaxfmt/internal/source"
	"relaxfmt/internal/trace"
)

// FormatString formats src and returns it without a trailing newline.
func FormatString(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	fs, file, err := virtualFile(src, opts)
	if err != nil {
		return nil, err
	}
	return formatSource(ctx, fs, file, opts)
}

// Document returns the document FormatString would render. With
// opts.NoRelax it is the formatter's output before bracket padding.
func Document(ctx context.Context, src []byte, opts Options) (doc.Document, error) {
	fs, file, err := virtualFile(src, opts)
	if err != nil {
		return nil, err
	}
	return buildDocument(ctx, fs, file, opts)
}

func virtualFile(src []byte, opts Options) (*source.FileSet, *source.File, error) {
	name := opts.File
	if name == "" {
		name = "nofile"
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	if opts.Line > 1 {
		line, err := safecast.Conv[uint32](opts.Line)
		if err != nil {
			return nil, nil, err
		}
		fs.SetFirstLine(id, line)
	}
	return fs, fs.Get(id), nil
}

func formatSource(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) ([]byte, error) {
	d, err := buildDocument(ctx, fs, file, opts)
	if err != nil {
		return nil, err
	}

	span := trace.BeginPass(ctx, trace.PassRender)
	done := opts.Timer.Track("render")
	out := render.Render(d, render.Options{Width: opts.lineLength(), Color: opts.Highlight})
	done(file.Path)
	span.End("")
	return []byte(out), nil
}

func buildDocument(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (doc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span := trace.BeginPass(ctx, trace.PassParse)
	done := opts.Timer.Track("parse")
	bag := diag.NewBag(opts.maxDiagnostics())
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(file, b, parser.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag})})
	done(file.Path)
	span.End("")
	if !res.Ok || bag.HasErrors() {
		bag.Sort()
		return nil, &SyntaxError{Path: file.Path, FileSet: fs, Bag: bag}
	}

	span = trace.BeginPass(ctx, trace.PassBuild)
	done = opts.Timer.Track("build")
	d := format.Build(b, res.File, opts.formatOptions())
	done(file.Path)
	span.End("")

	if !opts.NoRelax {
		span = trace.BeginPass(ctx, trace.PassRelax)
		done = opts.Timer.Track("relax")
		d = relax.Transform(d)
		done(file.Path)
		span.End("")
	}
	if trace.FromContext(ctx).Level().ShouldEmit(trace.ScopeNode) {
		trace.Note(ctx, trace.ScopeNode, "document", "depth="+strconv.Itoa(doc.Depth(d)))
	}
	return d, nil
}
