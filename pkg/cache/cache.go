// Package cache remembers which files are already fixed for a given fixer
// set so unchanged files can be skipped on the next run.
//
// An entry maps a file path to the hash of content that the fixer set
// leaves unchanged. The cache file is msgpack and carries a signature of
// the fixer set; a signature mismatch discards every entry.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yaklabco/gocsfix/pkg/fsutil"
)

// DefaultSize bounds the number of entries kept in memory and on disk.
const DefaultSize = 50000

// schemaVersion changes whenever fileFormat changes incompatibly.
const schemaVersion = 1

type fileFormat struct {
	Version   int               `msgpack:"version"`
	Signature string            `msgpack:"signature"`
	Entries   map[string]string `msgpack:"entries"`
}

// Cache is a bounded path -> content hash map. It is safe for concurrent use.
type Cache struct {
	path      string
	signature string
	entries   *lru.Cache[string, string]
	dirty     atomic.Bool
}

// New returns an empty cache that saves to path.
func New(path, signature string) (*Cache, error) {
	entries, err := lru.New[string, string](DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Cache{path: path, signature: signature, entries: entries}, nil
}

// Load reads the cache at path. A missing file, an older schema or a
// different signature all yield an empty cache. A corrupt file is an error.
func Load(path, signature string) (*Cache, error) {
	c, err := New(path, signature)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read cache %s: %w", path, err)
	}

	var ff fileFormat
	if err := msgpack.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("decode cache %s: %w", path, err)
	}
	if ff.Version != schemaVersion || ff.Signature != signature {
		c.dirty.Store(true)
		return c, nil
	}
	for file, hash := range ff.Entries {
		c.entries.Add(file, hash)
	}
	return c, nil
}

// Path returns the file the cache saves to.
func (c *Cache) Path() string { return c.path }

// Signature returns the fixer set signature the entries belong to.
func (c *Cache) Signature() string { return c.signature }

// Len returns the number of entries.
func (c *Cache) Len() int { return c.entries.Len() }

// Fresh reports whether file was last seen with content hash and needed no
// fixing.
func (c *Cache) Fresh(file, hash string) bool {
	got, ok := c.entries.Get(file)
	return ok && got == hash
}

// Store records that content with hash needs no fixing.
func (c *Cache) Store(file, hash string) {
	if prev, ok := c.entries.Peek(file); ok && prev == hash {
		return
	}
	c.entries.Add(file, hash)
	c.dirty.Store(true)
}

// Forget drops the entry for file.
func (c *Cache) Forget(file string) {
	if c.entries.Remove(file) {
		c.dirty.Store(true)
	}
}

// Save writes the cache atomically if anything changed since Load.
func (c *Cache) Save(ctx context.Context) error {
	if !c.dirty.Load() {
		return nil
	}

	ff := fileFormat{
		Version:   schemaVersion,
		Signature: c.signature,
		Entries:   make(map[string]string, c.entries.Len()),
	}
	for _, file := range c.entries.Keys() {
		if hash, ok := c.entries.Peek(file); ok {
			ff.Entries[file] = hash
		}
	}

	data, err := msgpack.Marshal(&ff)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := fsutil.WriteAtomic(ctx, c.path, data, 0); err != nil {
		return fmt.Errorf("save cache %s: %w", c.path, err)
	}
	c.dirty.Store(false)
	return nil
}
