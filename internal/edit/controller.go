// Package edit implements the per-row edit session: a staging buffer
// snapshotted from a record, writable only on manual-provenance fields,
// committed to storage as a whole and merged back into the shared
// collection from the storage response.
package edit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pautaops/pauta/internal/catalog"
	"github.com/pautaops/pauta/internal/collection"
	"github.com/pautaops/pauta/internal/record"
	"github.com/pautaops/pauta/internal/store"
)

var (
	// ErrNoSession is returned by staging and commit calls when no row is
	// being edited.
	ErrNoSession = errors.New("no edit session")

	// ErrSessionOpen is returned by StartEdit under the reject policy while
	// another row's session is open.
	ErrSessionOpen = errors.New("another row is being edited")

	// ErrReadOnlyField rejects writes to external-provenance fields.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrUnknownField rejects writes to keys the catalog does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrSaveInProgress rejects a commit while one is already in flight for
	// the same identity key. The second attempt is rejected, not queued.
	ErrSaveInProgress = errors.New("save already in progress")
)

// Policy decides what StartEdit does when another row's session is open.
type Policy int

const (
	// DiscardSibling silently drops the other row's uncommitted buffer,
	// matching the historical behavior.
	DiscardSibling Policy = iota

	// RejectSibling refuses to start until the open session is committed or
	// cancelled.
	RejectSibling
)

// Controller manages at most one edit session per table plus the in-flight
// save bookkeeping. Side effects are confined to a single storage update on
// commit; staging and cancel touch nothing outside the buffer.
type Controller struct {
	cat       *catalog.Catalog
	st        store.Store
	recs      *collection.Collection
	policy    Policy
	onRefresh func()

	mu       sync.Mutex
	session  *session
	inflight map[string]bool
}

type session struct {
	id     string
	buffer record.Record
}

// NewController wires a controller for one record variant. onRefresh, when
// non-nil, runs after every successful commit.
func NewController(cat *catalog.Catalog, st store.Store, recs *collection.Collection, policy Policy, onRefresh func()) *Controller {
	return &Controller{
		cat:       cat,
		st:        st,
		recs:      recs,
		policy:    policy,
		onRefresh: onRefresh,
		inflight:  make(map[string]bool),
	}
}

// StartEdit snapshots the full record, external fields included, into a
// fresh staging buffer keyed by the record's identity key. Restarting the
// same row resets its buffer.
func (c *Controller) StartEdit(rec record.Record) error {
	id := rec.String(c.cat.IDKey)
	if id == "" {
		return fmt.Errorf("start edit: record has no %s", c.cat.IDKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.id != id && c.policy == RejectSibling {
		return fmt.Errorf("start edit %q: %w (%s)", id, ErrSessionOpen, c.session.id)
	}
	c.session = &session{id: id, buffer: rec.Clone()}
	return nil
}

// SetField stages one value into the buffer. Only manual-provenance fields
// accept writes; the source collection is never touched.
func (c *Controller) SetField(key string, value any) error {
	f, ok := c.cat.ByKey(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if f.Provenance == catalog.External {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ErrNoSession
	}
	c.session.buffer[key] = value
	return nil
}

// EditingID returns the identity key of the open session, if any.
func (c *Controller) EditingID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", false
	}
	return c.session.id, true
}

// Buffer returns a copy of the open session's staging buffer.
func (c *Controller) Buffer() (record.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil, false
	}
	return c.session.buffer.Clone(), true
}

// CancelEdit discards the staging buffer. No storage call is made.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// CommitEdit sends the full staging buffer to storage, keyed by identity
// key. On success the session closes, the collection entry is replaced with
// the storage-normalized response, and the refresh callback fires. On
// failure the session and buffer survive so the user's input is not lost.
//
// At most one save may be in flight per identity key; a concurrent second
// commit fails with ErrSaveInProgress before any storage call.
func (c *Controller) CommitEdit(ctx context.Context) (record.Record, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return nil, ErrNoSession
	}
	id := c.session.id
	if c.inflight[id] {
		c.mu.Unlock()
		return nil, fmt.Errorf("commit %q: %w", id, ErrSaveInProgress)
	}
	c.inflight[id] = true
	buffer := c.session.buffer.Clone()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
	}()

	updated, err := c.st.Update(ctx, id, buffer)
	if err != nil {
		return nil, fmt.Errorf("save %q: %w", id, err)
	}

	c.mu.Lock()
	if c.session != nil && c.session.id == id {
		c.session = nil
	}
	c.mu.Unlock()

	c.recs.Replace(updated)
	if c.onRefresh != nil {
		c.onRefresh()
	}
	return updated, nil
}
