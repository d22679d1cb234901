// Package sync implements the client-side stores that keep screen
// state in step with the backend: paginated lists with optimistic
// mutations and rollback, derived notification counts, and
// last-query-wins search. Stores cache what the server last confirmed;
// they never own canonical state.
package sync

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/models"
)

// fetchFunc loads one page of a list-shaped resource.
type fetchFunc[T any] func(ctx context.Context, page, limit int) (models.Page[T], error)

// List is the core paginated store. Page 1 replaces the cache, later
// pages append with id-dedupe, and at most one fetch is in flight at a
// time: a LoadMore or Refresh issued while another fetch runs is
// dropped without a network call.
type List[T any] struct {
	mu    sync.Mutex
	fetch fetchFunc[T]
	keyOf func(T) string
	limit int

	items      []T
	page       int
	hasMore    bool
	loading    bool
	refreshing bool
	err        error
}

// NewList builds a store over fetch. keyOf extracts the entity id used
// for dedupe and mutation targeting.
func NewList[T any](fetch fetchFunc[T], keyOf func(T) string, limit int) *List[T] {
	return &List[T]{
		fetch:   fetch,
		keyOf:   keyOf,
		limit:   limit,
		hasMore: true,
	}
}

// Items returns a copy of the cached items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T(nil), l.items...)
}

// IsLoading reports whether a fetch is in flight.
func (l *List[T]) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// IsRefreshing reports whether the in-flight fetch is a refresh.
func (l *List[T]) IsRefreshing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refreshing
}

// HasMore reports whether the server has pages beyond the cached ones.
func (l *List[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

// Err returns the error recorded by the last failed fetch, nil after a
// success.
func (l *List[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Fetch loads the given page. Dropped without a call while another
// fetch is in flight.
func (l *List[T]) Fetch(ctx context.Context, page int) error {
	if !l.acquire(false) {
		return nil
	}
	defer l.release()
	return l.load(ctx, page)
}

// LoadMore fetches the next page. Dropped while a fetch is in flight
// or when the server reported no further pages.
func (l *List[T]) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.loading || !l.hasMore {
		l.mu.Unlock()
		return nil
	}
	l.loading = true
	next := l.page + 1
	l.mu.Unlock()

	defer l.release()
	return l.load(ctx, next)
}

// Refresh re-fetches page 1 with the refreshing flag raised. Dropped
// while a fetch is in flight.
func (l *List[T]) Refresh(ctx context.Context) error {
	if !l.acquire(true) {
		return nil
	}
	defer l.release()
	return l.load(ctx, 1)
}

// acquire claims the single in-flight slot. The check and the claim
// happen under one lock so two concurrent callers cannot both pass.
func (l *List[T]) acquire(refreshing bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loading {
		return false
	}
	l.loading = true
	l.refreshing = refreshing
	return true
}

func (l *List[T]) release() {
	l.mu.Lock()
	l.loading = false
	l.refreshing = false
	l.mu.Unlock()
}

// load performs the fetch and folds the result into the cache. A
// failure records the error and leaves the cached items untouched.
func (l *List[T]) load(ctx context.Context, page int) error {
	res, err := l.fetch(ctx, page, l.limit)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.err = err
		return err
	}
	l.err = nil
	if page <= 1 {
		l.items = res.Items
	} else {
		seen := make(map[string]struct{}, len(l.items))
		for _, it := range l.items {
			seen[l.keyOf(it)] = struct{}{}
		}
		for _, it := range res.Items {
			if _, dup := seen[l.keyOf(it)]; !dup {
				l.items = append(l.items, it)
			}
		}
	}
	l.page = page
	l.hasMore = res.HasNext
	return nil
}

// mutate runs an optimistic mutation against the item with the given
// id: apply the change locally, issue the call, and on success replace
// the item with the server-confirmed entity. On failure the
// pre-mutation snapshot is restored and the failure logged; the error
// is also returned for callers that surface it.
func (l *List[T]) mutate(ctx context.Context, id string, optimistic func(*T), call func(context.Context) (T, error)) error {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return nil
	}
	snapshot := l.items[idx]
	optimistic(&l.items[idx])
	l.mu.Unlock()

	confirmed, err := call(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	idx = l.indexOf(id)
	if idx < 0 {
		return err
	}
	if err != nil {
		l.items[idx] = snapshot
		logging.L().Warn("mutation failed, rolled back", zap.String("id", id), zap.Error(err))
		return err
	}
	l.items[idx] = confirmed
	return nil
}

// prepend inserts an entity at the head of the cache.
func (l *List[T]) prepend(item T) {
	l.mu.Lock()
	l.items = append([]T{item}, l.items...)
	l.mu.Unlock()
}

// remove drops the entity with the given id.
func (l *List[T]) remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
}

// indexOf is called with l.mu held.
func (l *List[T]) indexOf(id string) int {
	for i, it := range l.items {
		if l.keyOf(it) == id {
			return i
		}
	}
	return -1
}
