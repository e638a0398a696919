// Package handlers holds the state and helpers shared by the per-view and
// per-mutation handler packages.
package handlers

import (
	"context"
	"sync"

	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

// AppState tracks which view is currently active and the query that
// produced it. Mutation handlers use it to refresh the right view after a
// successful write instead of inspecting the UI.
type AppState struct {
	mu     sync.Mutex
	active viewcache.View
	query  any
}

// NewAppState creates an AppState with no active view.
func NewAppState() *AppState {
	return &AppState{}
}

// SetActive records view as the active one together with the query that
// produced its current data.
func (s *AppState) SetActive(view viewcache.View, query any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = view
	s.query = query
}

// Active returns the active view and its query. The view is "" until the
// first fetch of the session.
func (s *AppState) Active() (viewcache.View, any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.query
}

// Refresher re-runs the fetch for whichever view is currently active, so a
// confirmed mutation can hand fresh data straight back to the UI. The views
// handler implements it; mutation handlers depend only on this interface.
type Refresher interface {
	RefreshActive(ctx context.Context) (any, error)
}
