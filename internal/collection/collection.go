// Package collection holds the shared in-memory record sequence that backs
// list, filter and export reads.
//
// Writers (initial load, import, the edit controller's commit path) replace
// entries wholesale; readers always get deep copies, so a reader can race a
// replacement and still never observe a partially-updated record.
package collection

import (
	"sync"

	"github.com/pautaops/pauta/internal/record"
)

// Collection is an ordered, identity-keyed record sequence safe for
// concurrent use.
type Collection struct {
	mu    sync.RWMutex
	idKey string
	recs  []record.Record
}

// New creates an empty collection keyed by the given identity field.
func New(idKey string) *Collection {
	return &Collection{idKey: idKey}
}

// ReplaceAll swaps the whole sequence for clones of recs.
func (c *Collection) ReplaceAll(recs []record.Record) {
	cloned := make([]record.Record, len(recs))
	for i, r := range recs {
		cloned[i] = r.Clone()
	}
	c.mu.Lock()
	c.recs = cloned
	c.mu.Unlock()
}

// Prepend inserts records at the front, keeping newest-first order in line
// with the storage collaborator's getAll ordering.
func (c *Collection) Prepend(recs ...record.Record) {
	cloned := make([]record.Record, len(recs))
	for i, r := range recs {
		cloned[i] = r.Clone()
	}
	c.mu.Lock()
	c.recs = append(cloned, c.recs...)
	c.mu.Unlock()
}

// Replace swaps the entry with rec's identity key for a clone of rec.
// It reports whether a matching entry existed.
func (c *Collection) Replace(rec record.Record) bool {
	id := rec.String(c.idKey)
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.String(c.idKey) == id {
			c.recs[i] = rec.Clone()
			return true
		}
	}
	return false
}

// Remove drops the entry with the given identity key.
func (c *Collection) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.String(c.idKey) == id {
			c.recs = append(c.recs[:i], c.recs[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a clone of the entry with the given identity key.
func (c *Collection) Get(id string) (record.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recs {
		if r.String(c.idKey) == id {
			return r.Clone(), true
		}
	}
	return nil, false
}

// Exists reports whether an entry with the given identity key is present.
func (c *Collection) Exists(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Snapshot returns clones of all entries in order.
func (c *Collection) Snapshot() []record.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]record.Record, len(c.recs))
	for i, r := range c.recs {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recs)
}
