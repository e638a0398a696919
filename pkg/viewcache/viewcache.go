// Package viewcache holds the per-view result cache for the dashboard.
//
// Each view owns a small number of cache slots keyed by the query parameters
// that produced them. A repeated request with an unchanged key is served
// synchronously from the slot; a key change fetches and replaces; any
// successful mutation invalidates every view it could affect, wholesale.
package viewcache

import (
	"context"
	"fmt"
	"sync"
)

// View identifies one cached tab of the dashboard.
type View string

const (
	DailyTransactions View = "daily-transactions"
	MonthlyExpenses   View = "monthly-expenses"
	SearchResults     View = "search-results"
	KeywordList       View = "keyword-list"
)

// TransactionViews are the views a transaction mutation can affect. A single
// transaction can appear in all three simultaneously, so mutations must
// invalidate all of them unconditionally.
func TransactionViews() []View {
	return []View{DailyTransactions, MonthlyExpenses, SearchResults}
}

// FetchFunc loads a view's data from the Gateway on a cache miss.
type FetchFunc func(ctx context.Context) (any, error)

type slot struct {
	key  string
	data any
}

// Manager owns every cache slot. Slots are never mutated in place; a
// successful fetch replaces them wholesale and Invalidate drops them.
type Manager struct {
	mu        sync.Mutex
	slots     map[View][]slot
	active    map[View]string
	retention map[View]int
}

// NewManager creates an empty cache manager. Every view retains a single
// slot until SetRetention raises it.
func NewManager() *Manager {
	return &Manager{
		slots:     make(map[View][]slot),
		active:    make(map[View]string),
		retention: make(map[View]int),
	}
}

// SetRetention lets a view keep up to n keyed slots instead of one. The
// server-paginated search view uses this so stepping back to an
// already-fetched page is a local hit.
func (m *Manager) SetRetention(view View, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n < 1 {
		n = 1
	}
	m.retention[view] = n
}

// GetOrFetch returns the cached data for (view, key) when present, otherwise
// runs fetch and stores the result under key. A failed fetch leaves existing
// slots untouched. If the view's active key changes while fetch is in
// flight, the late result is returned to its caller but not stored, so a
// stale response can never overwrite the slot of a newer request.
func (m *Manager) GetOrFetch(ctx context.Context, view View, key string, fetch FetchFunc) (any, error) {
	m.mu.Lock()
	m.active[view] = key
	for _, s := range m.slots[view] {
		if s.key == key {
			m.mu.Unlock()
			return s.data, nil
		}
	}
	m.mu.Unlock()

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[view] != key {
		// Superseded while in flight; hand the data back but do not store it.
		return data, nil
	}
	m.store(view, key, data)
	return data, nil
}

// store replaces or prepends the slot for key, trimming to the view's
// retention. Callers must hold the mutex.
func (m *Manager) store(view View, key string, data any) {
	keep := m.retention[view]
	if keep < 1 {
		keep = 1
	}

	slots := m.slots[view]
	filtered := make([]slot, 0, len(slots)+1)
	filtered = append(filtered, slot{key: key, data: data})
	for _, s := range slots {
		if s.key != key {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) > keep {
		filtered = filtered[:keep]
	}
	m.slots[view] = filtered
}

// Invalidate unconditionally clears every slot of the named views. Mutation
// handlers call this synchronously after a confirmed success, before
// deciding which view to refetch.
func (m *Manager) Invalidate(views ...View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, view := range views {
		delete(m.slots, view)
		delete(m.active, view)
	}
}

// Cached reports whether (view, key) is currently held, without fetching.
func (m *Manager) Cached(view View, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.slots[view] {
		if s.key == key {
			return true
		}
	}
	return false
}

// Lookup is the typed wrapper over Manager.GetOrFetch.
func Lookup[T any](ctx context.Context, m *Manager, view View, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	data, err := m.GetOrFetch(ctx, view, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := data.(T)
	if !ok {
		return zero, fmt.Errorf("viewcache: slot for %s holds %T", view, data)
	}
	return typed, nil
}
