package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file of one run. A FileID indexes files; re-adding a
// path yields a new ID and GetLatest follows the newest one.
type FileSet struct {
	files  []File
	latest map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// Add stores already-normalized content and indexes its lines.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	f := File{
		ID:        FileID(n),
		Path:      normalizePath(path),
		Content:   content,
		LineIdx:   buildLineIndex(content),
		Hash:      sha256.Sum256(content),
		Flags:     flags,
		FirstLine: 1,
	}
	fileSet.files = append(fileSet.files, f)
	fileSet.latest[f.Path] = f.ID
	return f.ID
}

// Load reads path from disk, normalizing BOM, CRLF and NFC.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(content)
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (stdin, tests, snippets).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	content, flags := Normalize(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// SetFirstLine makes positions in id start at line, for snippets cut out of
// a larger document. Zero means 1.
func (fileSet *FileSet) SetFirstLine(id FileID, line uint32) {
	fileSet.files[id].FirstLine = max(line, 1)
}

func (fileSet *FileSet) Get(id FileID) *File { return &fileSet.files[id] }

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.latest[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span into line/column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	return f.Position(span.Start), f.Position(span.End)
}
