package content

import (
	"embed"
	"io/fs"
	"os"
	"sync"
)

//go:embed data/*.json
var bundled embed.FS

// Source reads raw backing documents by file name.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// FSSource reads backing documents from an fs.FS.
type FSSource struct {
	FS fs.FS
}

// ReadFile implements Source.
func (s FSSource) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}

// Bundled returns the content compiled into the binary.
func Bundled() Source {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return FSSource{FS: sub}
}

// Dir returns a Source reading from a directory on disk.
func Dir(path string) Source {
	return FSSource{FS: os.DirFS(path)}
}

// CountingSource wraps a Source and records how many times each file is read.
type CountingSource struct {
	Source

	mu     sync.Mutex
	counts map[string]int
}

// NewCountingSource wraps src.
func NewCountingSource(src Source) *CountingSource {
	return &CountingSource{Source: src, counts: make(map[string]int)}
}

// ReadFile implements Source.
func (c *CountingSource) ReadFile(name string) ([]byte, error) {
	c.mu.Lock()
	c.counts[name]++
	c.mu.Unlock()
	return c.Source.ReadFile(name)
}

// Reads returns the number of reads of name so far.
func (c *CountingSource) Reads(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[name]
}
