package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/observ"
	"relaxfmt/internal/project"
	"relaxfmt/internal/source"
	"relaxfmt/internal/trace"
)

// ErrNoSourceFiles is returned when the given paths hold no .ex or .exs file.
var ErrNoSourceFiles = errors.New("format: no source files found")

// FormatOptions configures FormatPaths.
type FormatOptions struct {
	Options Options
	// Check leaves files untouched; Changed tells whether they would change.
	Check bool
	// Stdout returns formatted content in the results instead of writing it.
	Stdout bool
	// Verify reparses every result and compares its outline with the input.
	Verify bool
	// Timings records per-file pass durations in FormatResult.Timing.
	Timings bool
	Jobs    int
	// Cache is optional; nil disables caching.
	Cache    *ResultCache
	Progress ProgressFunc
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Original  []byte
	Formatted []byte
	// FileSet and Bag hold informational diagnostics, such as renames.
	FileSet *source.FileSet
	Bag     *diag.Bag
	Timing  *observ.Report
}

// FormatPaths formats provided files or directories (recursively collecting
// .ex and .exs files). Files are processed in parallel, at most opts.Jobs at
// a time. Per-file failures are reported in FormatResult.Err; the returned
// error is reserved for collection failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	ctx, span := trace.BeginFromContext(ctx, trace.ScopeDriver, "fmt")
	defer span.End("")

	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	for i, path := range files {
		opts.Progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			opts.Progress.emit(ProgressEvent{Path: path, Index: i, Total: len(files), Status: ProgressWorking})

			results[i] = formatOne(trace.WithJob(gctx, i+1), path, opts)

			ev := ProgressEvent{
				Path:    path,
				Index:   i,
				Total:   len(files),
				Status:  ProgressDone,
				Changed: results[i].Changed,
				Cached:  results[i].Cached,
				Err:     results[i].Err,
				Elapsed: time.Since(started),
			}
			if ev.Err != nil {
				ev.Status = ProgressError
			}
			opts.Progress.emit(ev)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts FormatOptions) FormatResult {
	ctx, span := trace.BeginFile(ctx, path)
	result := formatFile(ctx, path, opts)
	span.WithExtra("changed", strconv.FormatBool(result.Changed))
	span.EndErr(result.Err)
	return result
}

func formatFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", path, err)
		return result
	}
	result.Original = raw

	fileOpts := opts.Options
	fileOpts.File = path
	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
		fileOpts.Timer = timer
	}

	key := project.Combine(project.Digest(sha256.Sum256(raw)), fileOpts.digest())
	hit, cached := opts.Cache.Lookup(key, opts.Verify)
	formatted, changed := hit.Formatted, hit.Changed
	if cached {
		trace.Note(ctx, trace.ScopeFile, "cache-hit", path)
	} else {
		fs, file := loadedFile(path, raw)
		bag := diag.NewBag(fileOpts.maxDiagnostics())
		fileOpts.Reporter = diag.BagReporter{Bag: bag}
		result.FileSet, result.Bag = fs, bag

		formatted, err = formatLoaded(ctx, fs, file, fileOpts)
		if err != nil {
			result.Err = err
			return result
		}
		if opts.Verify {
			if err := verifyOutline(fs, file, formatted); err != nil {
				result.Err = err
				return result
			}
		}
		changed = !bytes.Equal(raw, formatted)
		// Best effort: an unwritable cache only costs the next run time.
		_ = opts.Cache.Store(key, CachedResult{Formatted: formatted, Changed: changed, Verified: opts.Verify})
	}
	result.Cached = cached
	result.Changed = changed
	if timer != nil {
		report := timer.Report()
		result.Timing = &report
		appendTimingDiagnostic(&result, report)
	}

	switch {
	case opts.Check:
	case opts.Stdout:
		result.Formatted = formatted
	case changed:
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
			result.Err = fmt.Errorf("write %s: %w", path, err)
			return result
		}
		result.Formatted = formatted
		// The written file is now formatted; remember that for the next run.
		_ = opts.Cache.Store(project.Combine(project.Digest(sha256.Sum256(formatted)), fileOpts.digest()),
			CachedResult{Formatted: formatted, Verified: opts.Verify})
	}
	return result
}

// CollectSourceFiles expands paths into the sorted list of files FormatPaths
// would format. Directories are walked for .ex and .exs files, skipping dot
// directories, _build and deps.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					if path != p && isHiddenOrBuildDir(d.Name()) {
						return filepath.SkipDir
					}
					return nil
				}
				if isSourceFile(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// An explicitly named file is formatted whatever its extension.
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".ex", ".exs":
		return true
	}
	return false
}

// isHiddenOrBuildDir matches dot directories and Mix build output.
func isHiddenOrBuildDir(name string) bool {
	if len(name) > 1 && name[0] == '.' {
		return true
	}
	return name == "_build" || name == "deps"
}
