package sync

import (
	"context"
	"strings"
	"sync"

	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// searchFunc runs one search query against the backend.
type searchFunc[T any] func(ctx context.Context, query string, page, limit int) (models.Page[T], error)

// Search is a last-query-wins search store. Every query bumps a
// generation counter and a response is applied only if its generation
// is still the latest, so results always reflect the most recent query
// regardless of response arrival order. An empty or whitespace query
// clears the results synchronously without a network call.
type Search[T any] struct {
	mu    sync.Mutex
	run   searchFunc[T]
	limit int

	gen     uint64
	query   string
	items   []T
	loading bool
	err     error
}

// NewSearch builds a search store over run.
func NewSearch[T any](run searchFunc[T], limit int) *Search[T] {
	return &Search[T]{run: run, limit: limit}
}

// NewPostSearch searches posts by content and tags.
func NewPostSearch(posts gateway.Posts, limit int) *Search[models.Post] {
	return NewSearch(posts.Search, limit)
}

// NewUserSearch searches users by username and display name.
func NewUserSearch(users gateway.Users, limit int) *Search[models.User] {
	return NewSearch(users.Search, limit)
}

// Results returns a copy of the current result set.
func (s *Search[T]) Results() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Query returns the query the current results belong to.
func (s *Search[T]) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// IsLoading reports whether the latest query is still in flight.
func (s *Search[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error of the latest completed query, nil on success.
func (s *Search[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Run executes a search. A blank query clears state and returns
// immediately; any in-flight older query is outraced by the generation
// bump and its response discarded on arrival.
func (s *Search[T]) Run(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		s.gen++
		s.query = ""
		s.items = nil
		s.loading = false
		s.err = nil
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.query = query
	s.loading = true
	s.mu.Unlock()

	res, err := s.run(ctx, query, 1, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer query superseded this one; drop the response.
		return nil
	}
	s.loading = false
	if err != nil {
		s.err = err
		return err
	}
	s.err = nil
	s.items = res.Items
	return nil
}
