package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

func sourceTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "a.ex"), "foo(1,2)\n")
	writeFile(t, filepath.Join(root, "test", "b.exs"), "[ 1, 2 ]\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "foo(1)\n")
	writeFile(t, filepath.Join(root, ".git", "c.ex"), "foo(1)\n")
	writeFile(t, filepath.Join(root, "_build", "d.ex"), "foo(1)\n")
	return root
}

func TestCollectSourceFiles(t *testing.T) {
	root := sourceTree(t)
	extra := filepath.Join(root, "notes.txt")
	got, err := CollectSourceFiles(context.Background(), []string{root, extra, root})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(root, "lib", "a.ex"),
		extra,
		filepath.Join(root, "test", "b.exs"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPathsCheck(t *testing.T) {
	root := sourceTree(t)
	results, err := FormatPaths(context.Background(), []string{filepath.Join(root, "lib"), filepath.Join(root, "test")}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Changed || results[1].Changed {
		t.Fatalf("unexpected Changed flags: %v %v", results[0].Changed, results[1].Changed)
	}
	if got := readFile(t, filepath.Join(root, "lib", "a.ex")); got != "foo(1,2)\n" {
		t.Fatalf("check mode modified the file: %q", got)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	root := sourceTree(t)
	path := filepath.Join(root, "lib", "a.ex")
	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(results[0].Formatted) != "foo( 1, 2 )\n" || string(results[0].Original) != "foo(1,2)\n" {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if got := readFile(t, path); got != "foo(1,2)\n" {
		t.Fatalf("stdout mode modified the file: %q", got)
	}
}

func TestFormatPathsWritesFiles(t *testing.T) {
	root := sourceTree(t)
	path := filepath.Join(root, "lib", "a.ex")
	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Jobs: 1})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil || !results[0].Changed {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if got := readFile(t, path); got != "foo( 1, 2 )\n" {
		t.Fatalf("file not rewritten: %q", got)
	}

	results, err = FormatPaths(context.Background(), []string{path}, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Fatal("second run must be a no-op")
	}
}

func TestFormatPathsSyntaxErrorPerFile(t *testing.T) {
	root := t.TempDir()
	bad := filepath.Join(root, "bad.ex")
	good := filepath.Join(root, "good.ex")
	writeFile(t, bad, "foo(1\n")
	writeFile(t, good, "foo(1)\n")
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	var serr *SyntaxError
	if !errors.As(results[0].Err, &serr) {
		t.Fatalf("expected *SyntaxError for %s, got %v", results[0].Path, results[0].Err)
	}
	if results[1].Err != nil || !results[1].Changed {
		t.Fatalf("good file: %+v", results[1])
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	root := t.TempDir()
	if _, err := FormatPaths(context.Background(), []string{root}, FormatOptions{}); !errors.Is(err, ErrNoSourceFiles) {
		t.Fatalf("expected ErrNoSourceFiles, got %v", err)
	}
}

func TestFormatPathsCache(t *testing.T) {
	root := sourceTree(t)
	cache, err := OpenResultCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	paths := []string{filepath.Join(root, "lib")}
	opts := FormatOptions{Check: true, Cache: cache}

	first, err := FormatPaths(context.Background(), paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := FormatPaths(context.Background(), paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached || !second[0].Cached {
		t.Fatalf("Cached flags: first=%v second=%v", first[0].Cached, second[0].Cached)
	}
	if second[0].Changed != first[0].Changed {
		t.Fatal("cached result disagrees with the computed one")
	}

	// Other options must not hit the same entry.
	opts.Options.LineLength = 20
	third, err := FormatPaths(context.Background(), paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Fatal("cache key ignores options")
	}
}

func TestResultCacheLookup(t *testing.T) {
	cache, err := OpenResultCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Options{}.digest()
	if _, ok := cache.Lookup(key, false); ok {
		t.Fatal("empty cache must miss")
	}

	in := CachedResult{Formatted: []byte("foo( 1 )\n"), Changed: true}
	if err := cache.Store(key, in); err != nil {
		t.Fatal(err)
	}
	got, ok := cache.Lookup(key, false)
	if !ok {
		t.Fatal("Lookup after Store missed")
	}
	in.Schema = resultSchema
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cache.Lookup(key, true); ok {
		t.Fatal("unverified entry must not satisfy a verifying run")
	}

	in.Verified = true
	if err := cache.Store(key, in); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(key, true); !ok {
		t.Fatal("verified entry should hit")
	}

	if err := cache.Purge(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(key, false); ok {
		t.Fatal("Purge left the entry behind")
	}
	var nilCache *ResultCache
	if _, ok := nilCache.Lookup(key, false); ok || nilCache.Store(key, in) != nil {
		t.Fatal("nil cache must miss silently")
	}
}

func TestResultCacheIgnoresCorruptEntry(t *testing.T) {
	cache, err := OpenResultCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Options{LineLength: 40}.digest()
	p := cache.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(key, false); ok {
		t.Fatal("corrupt entry must read as a miss")
	}
}

func TestFormatPathsVerifySkipsUnverifiedCache(t *testing.T) {
	root := sourceTree(t)
	cache, err := OpenResultCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	paths := []string{filepath.Join(root, "lib")}

	if _, err := FormatPaths(context.Background(), paths, FormatOptions{Check: true, Cache: cache}); err != nil {
		t.Fatal(err)
	}
	res, err := FormatPaths(context.Background(), paths, FormatOptions{Check: true, Verify: true, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Cached {
		t.Fatal("--verify must not reuse an unverified result")
	}
	res, err = FormatPaths(context.Background(), paths, FormatOptions{Check: true, Verify: true, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if !res[0].Cached {
		t.Fatal("verified result should be reused")
	}
}

func TestFormatPathsProgress(t *testing.T) {
	root := sourceTree(t)
	var mu sync.Mutex
	counts := map[ProgressStatus]int{}
	_, err := FormatPaths(context.Background(), []string{root}, FormatOptions{
		Check: true,
		Progress: func(ev ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			counts[ev.Status]++
			if ev.Total != 2 {
				t.Errorf("Total = %d", ev.Total)
			}
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	// notes.txt, .git and _build are skipped by the directory walk.
	want := map[ProgressStatus]int{ProgressQueued: 2, ProgressWorking: 2, ProgressDone: 2}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPathsTimings(t *testing.T) {
	root := sourceTree(t)
	results, err := FormatPaths(context.Background(), []string{filepath.Join(root, "lib")}, FormatOptions{Check: true, Timings: true})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]
	if res.Timing == nil || len(res.Timing.Phases) != 4 {
		t.Fatalf("unexpected timing: %+v", res.Timing)
	}
	last := res.Bag.Items()[res.Bag.Len()-1]
	if last.Code != diag.ObsTimings || len(last.Notes) != 1 {
		t.Fatalf("expected a timings diagnostic, got %+v", last)
	}
}

func TestVerifyOutline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("v.ex", []byte("# note\nfoo(1)\nbar"))
	file := fs.Get(id)
	if err := verifyOutline(fs, file, []byte("# note\nfoo( 1 )\nbar\n")); err != nil {
		t.Fatalf("equivalent output rejected: %v", err)
	}
	for _, bad := range []string{"foo( 1 )\nbar\n", "# note\nfoo( 1 )\n", "foo(\n"} {
		if err := verifyOutline(fs, file, []byte(bad)); !errors.Is(err, ErrOutlineMismatch) {
			t.Errorf("%q: expected ErrOutlineMismatch, got %v", bad, err)
		}
	}
}

func TestFormatPathsVerify(t *testing.T) {
	root := sourceTree(t)
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Check: true, Verify: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
	}
}

func TestUnifiedDiff(t *testing.T) {
	if UnifiedDiff("x.ex", []byte("a\n"), []byte("a\n")) != "" {
		t.Fatal("equal inputs must produce no diff")
	}
	got := UnifiedDiff("x.ex", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"))
	want := "--- a/x.ex\n+++ b/x.ex\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestUnifiedDiffSeparateHunks(t *testing.T) {
	before := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	after := "one\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\ntwelve\n"
	got := UnifiedDiff("n.ex", []byte(before), []byte(after))
	want := "--- a/n.ex\n+++ b/n.ex\n" +
		"@@ -1,4 +1,4 @@\n-1\n+one\n 2\n 3\n 4\n" +
		"@@ -9,4 +9,4 @@\n 9\n 10\n 11\n-12\n+twelve\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
