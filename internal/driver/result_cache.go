package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"relaxfmt/internal/project"
)

// resultSchema must change whenever the formatter's output changes for the
// same input and options; old entries then read as misses.
const resultSchema uint16 = 2

// ResultCache хранит результаты форматирования на диске по ключу
// H(содержимое файла || опции). Safe for concurrent use by FormatPaths workers.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedResult is one stored fmt outcome.
type CachedResult struct {
	Schema    uint16 `msgpack:"v"`
	Formatted []byte `msgpack:"out"`
	// Changed reports whether Formatted differs from the source it came from.
	Changed bool `msgpack:"changed"`
	// Verified is set when the outline check of --verify passed for Formatted.
	Verified bool `msgpack:"verified"`
}

// OpenResultCache opens $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenResultCacheAt(filepath.Join(base, app))
}

func OpenResultCacheAt(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// entryPath shards by the first key byte to keep directories small.
func (c *ResultCache) entryPath(key project.Digest) string {
	name := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "fmt", name[:2], name+".mp")
}

// Lookup returns the entry for key. Missing, unreadable and stale entries
// are all misses; a run that needs verification only accepts verified ones.
func (c *ResultCache) Lookup(key project.Digest, needVerified bool) (CachedResult, bool) {
	if c == nil {
		return CachedResult{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return CachedResult{}, false
	}
	var r CachedResult
	if msgpack.Unmarshal(data, &r) != nil || r.Schema != resultSchema {
		return CachedResult{}, false
	}
	if needVerified && !r.Verified {
		return CachedResult{}, false
	}
	return r, true
}

// Store writes r under key through a temp file and rename, so readers never
// see a partial entry. Schema is filled in.
func (c *ResultCache) Store(key project.Digest, r CachedResult) (err error) {
	if c == nil {
		return nil
	}
	r.Schema = resultSchema
	data, err := msgpack.Marshal(&r)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Purge removes every stored entry.
func (c *ResultCache) Purge() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.RemoveAll(filepath.Join(c.dir, "fmt"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
