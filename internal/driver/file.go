package driver

import (
	"context"
	"fmt"
	"os"

	"relaxfmt/internal/source"
)

// FormatFile formats the file at path. Non-empty output ends with a newline.
func FormatFile(ctx context.Context, path string, opts Options) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	opts.File = path
	fs, file := loadedFile(path, raw)
	return formatLoaded(ctx, fs, file, opts)
}

func loadedFile(path string, raw []byte) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	content, flags := source.Normalize(raw)
	id := fs.Add(path, content, flags)
	return fs, fs.Get(id)
}

func formatLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) ([]byte, error) {
	out, err := formatSource(ctx, fs, file, opts)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	return append(out, '\n'), nil
}
