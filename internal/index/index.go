// Package index holds the process-wide handle to the rulings index.
//
// The Manager opens the index lazily on first use and returns the same
// handle to every later caller, including concurrent ones from MCP and HTTP
// sessions. It is an explicit object created once at startup and passed to
// the components that need it, rather than a hidden package global.
package index

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/store"
)

var errClosed = fmt.Errorf("%w: index closed", store.ErrUnavailable)

// Opener opens an index file. store.Open is the default; tests substitute
// their own to count calls or inject failures.
type Opener func(path string) (*store.SQLiteStore, error)

// Manager lazily opens and caches a single read-only index handle.
type Manager struct {
	path string
	open Opener

	once  sync.Once
	mu    sync.Mutex
	store *store.SQLiteStore
	err   error
}

// Option configures a Manager.
type Option func(*Manager)

// WithOpener replaces the function used to open the index.
func WithOpener(fn Opener) Option {
	return func(m *Manager) { m.open = fn }
}

// New returns a Manager for the index at path. Nothing is opened until Get.
func New(path string, opts ...Option) *Manager {
	m := &Manager{path: path, open: store.Open}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns the index file the manager was configured with.
func (m *Manager) Path() string {
	return m.path
}

// Get returns the shared handle, opening the index on the first call.
//
// The outcome of the first open is remembered: a failure is returned to every
// caller (wrapping store.ErrUnavailable) and the handle is nil, never a
// partially initialised store. The context is accepted for symmetry with the
// rest of the pipeline; opening is a local file operation and is not
// cancelled.
func (m *Manager) Get(_ context.Context) (*store.SQLiteStore, error) {
	m.once.Do(func() {
		s, err := m.open(m.path)
		if err != nil && !errors.Is(err, store.ErrUnavailable) {
			err = fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}
		if err != nil {
			s = nil
		}

		log.Event("index:open", "open").
			Path(m.path).
			Write(err)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			m.err = err
			return
		}
		m.store = s
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.store, nil
}

// Close releases the handle if one was opened. Later calls to Get return
// store.ErrUnavailable.
func (m *Manager) Close() error {
	// Mark the once as done so a Get after Close does not reopen the file.
	m.once.Do(func() {})

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err == nil {
		m.err = errClosed
	}
	if m.store == nil {
		return nil
	}
	err := m.store.Close()
	m.store = nil
	m.err = errClosed
	return err
}
