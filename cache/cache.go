// Package cache persists compile outcomes (diagnostics plus the success
// flag) keyed by the source text's content hash, so tooling can skip
// recompiling unchanged documents. Only diagnostic data is stored; the
// resolved model itself is never persisted.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ramen"
	"ramen/diag"
)

// Schema version; bump when the payload layout changes so stale entries are
// rejected instead of misread.
const schemaVersion uint16 = 1

// Digest is a sha256 content hash.
type Digest = [32]byte

// Record is one diagnostic in storable form.
type Record struct {
	Severity uint8
	Code     uint16
	Message  string
	Line     uint32
	Column   uint32
	Length   uint32
}

// Outcome is the cached result of one compile.
type Outcome struct {
	Schema  uint16
	Success bool
	Records []Record
}

// Snapshot captures a document's outcome for storage.
func Snapshot(doc *ramen.Document) *Outcome {
	located := doc.Located()
	records := make([]Record, 0, len(located))
	for _, l := range located {
		records = append(records, Record{
			Severity: uint8(l.Severity),
			Code:     uint16(l.Code),
			Message:  l.Message,
			Line:     l.Line,
			Column:   l.Column,
			Length:   l.Length,
		})
	}
	return &Outcome{
		Schema:  schemaVersion,
		Success: doc.Success(),
		Records: records,
	}
}

// Key returns the content hash of the document's source text.
func Key(doc *ramen.Document) Digest {
	return doc.FileSet.Get(doc.File).Hash
}

// Located converts stored records back to the diagnostic wire shape.
func (o *Outcome) Located() []diag.Located {
	out := make([]diag.Located, 0, len(o.Records))
	for _, r := range o.Records {
		out = append(out, diag.Located{
			Severity: diag.Severity(r.Severity),
			Code:     diag.Code(r.Code),
			Message:  r.Message,
			Line:     r.Line,
			Column:   r.Column,
			Length:   r.Length,
		})
	}
	return out
}

// DiskCache stores outcomes under a directory, one msgpack file per content
// hash. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a disk cache rooted at dir, creating it if needed.
func Open(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes an outcome.
func (c *DiskCache) Put(key Digest, outcome *Outcome) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(outcome); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads an outcome if present and schema-compatible.
func (c *DiskCache) Get(key Digest) (*Outcome, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	var out Outcome
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if out.Schema != schemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// Drop removes every cached entry.
func (c *DiskCache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mp" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
