// Package querycache is a tag-invalidated read cache for API clients.
//
// Every query is identified by a key (resource path plus canonical
// parameters) and labelled with resource tags. Concurrent reads of the same
// key share one fetch. A successful mutation marks every entry carrying one
// of its tags stale and refetches the ones somebody is subscribed to.
package querycache

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

var (
	// ErrTypeMismatch is returned by Get when the cached value has another type.
	ErrTypeMismatch = errors.New("querycache: cached value has unexpected type")
	ErrNoFetcher    = errors.New("querycache: query has no fetcher")
)

// Fetcher loads the value for a query. The context it receives is never
// cancelled by the caller that triggered the fetch.
type Fetcher func(ctx context.Context) (any, error)

type Query struct {
	Key   string
	Tags  []string
	Fetch Fetcher
}

// Key builds a query key from a resource path and its parameters. Parameters
// are sorted so that equal parameter sets always yield the same key.
func Key(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// Result is one emission delivered to a subscriber.
type Result struct {
	Data      any
	Err       error
	IsLoading bool
}

type entry struct {
	key   string
	tags  map[string]struct{}
	fetch Fetcher
	gen   uint64
	data  any
	has   bool
	subs  map[*Subscription]struct{}
}

func (e *entry) hasTag(tags []string) bool {
	for _, t := range tags {
		if _, ok := e.tags[t]; ok {
			return true
		}
	}
	return false
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	nextGen uint64
	group   singleflight.Group
	wg      sync.WaitGroup
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
	}
}

// lookup returns the entry for q, creating it when needed. Must be called
// with c.mu held.
func (c *Cache) lookup(q Query) *entry {
	e, ok := c.entries[q.Key]
	if !ok {
		c.nextGen++
		e = &entry{
			key:  q.Key,
			tags: make(map[string]struct{}, len(q.Tags)),
			gen:  c.nextGen,
			subs: make(map[*Subscription]struct{}),
		}
		c.entries[q.Key] = e
	}
	for _, t := range q.Tags {
		e.tags[t] = struct{}{}
	}
	if q.Fetch != nil {
		e.fetch = q.Fetch
	}
	return e
}

// Query returns the live cached value for q or fetches it. Callers that
// arrive while a fetch for the same key is running wait for that fetch.
// Cancelling ctx stops the wait, not the fetch.
func (c *Cache) Query(ctx context.Context, q Query) (any, error) {
	c.mu.Lock()
	e := c.lookup(q)
	if e.has {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	gen, fetch := e.gen, e.fetch
	c.mu.Unlock()

	if fetch == nil {
		return nil, ErrNoFetcher
	}

	ch := c.start(q.Key, gen, fetch)

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Get is Query with the result asserted to T.
func Get[T any](ctx context.Context, c *Cache, q Query) (T, error) {
	var zero T

	v, err := c.Query(ctx, q)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return out, nil
}

// start joins or launches the fetch of key at generation gen.
func (c *Cache) start(key string, gen uint64, fetch Fetcher) <-chan singleflight.Result {
	shared := c.group.DoChan(flightKey(key, gen), func() (any, error) {
		v, err := fetch(context.Background())
		c.store(key, gen, v, err)
		return v, err
	})

	out := make(chan singleflight.Result, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		out <- <-shared
	}()

	return out
}

func flightKey(key string, gen uint64) string {
	return key + "#" + strconv.FormatUint(gen, 10)
}

// store records a fetch result unless the entry was invalidated or dropped
// while the fetch was running. Errors are delivered but never cached.
func (c *Cache) store(key string, gen uint64, v any, err error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.gen != gen {
		c.mu.Unlock()
		return
	}

	res := Result{Data: v, Err: err}
	if err == nil {
		e.data = v
		e.has = true
	} else {
		res.Data = e.data
	}
	subs := c.enqueue(e, res)
	c.mu.Unlock()

	flush(subs)
}

// enqueue queues res for every subscriber of e. Must be called with c.mu held.
func (c *Cache) enqueue(e *entry, res Result) []*Subscription {
	subs := make([]*Subscription, 0, len(e.subs))
	for s := range e.subs {
		s.push(res)
		subs = append(subs, s)
	}
	return subs
}

func flush(subs []*Subscription) {
	for _, s := range subs {
		s.flush()
	}
}

// Invalidate marks every entry carrying one of tags stale. Entries with
// subscribers are refetched in the background.
func (c *Cache) Invalidate(tags ...string) {
	type refetch struct {
		key   string
		gen   uint64
		fetch Fetcher
	}

	var (
		pending []refetch
		notify  []*Subscription
	)

	c.mu.Lock()
	for _, e := range c.entries {
		if !e.hasTag(tags) {
			continue
		}
		c.nextGen++
		e.gen = c.nextGen
		e.has = false

		if len(e.subs) > 0 && e.fetch != nil {
			notify = append(notify, c.enqueue(e, Result{Data: e.data, IsLoading: true})...)
			pending = append(pending, refetch{key: e.key, gen: e.gen, fetch: e.fetch})
		}
	}
	c.mu.Unlock()

	flush(notify)
	for _, r := range pending {
		c.start(r.key, r.gen, r.fetch)
	}
}

// Mutate runs a write. On success every entry tagged with one of tags is
// invalidated. On failure the cache is left untouched and the error returned.
func (c *Cache) Mutate(ctx context.Context, tags []string, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	c.Invalidate(tags...)
	return nil
}

// Reset drops every entry and detaches every subscription. Fetches still in
// flight finish but their results are discarded.
func (c *Cache) Reset() {
	c.mu.Lock()
	for _, e := range c.entries {
		for s := range e.subs {
			s.detach()
		}
	}
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Wait blocks until every fetch started so far has finished.
func (c *Cache) Wait() {
	c.wg.Wait()
}

// Subscription models a mounted consumer of one query.
type Subscription struct {
	c   *Cache
	key string
	fn  func(Result)

	mu      sync.Mutex // guards pending and active
	pending []Result
	active  bool

	deliver sync.Mutex // serialises calls to fn
}

// Subscribe registers fn for q. The first emission is the cached value, or a
// loading state followed by the fetch result.
func (c *Cache) Subscribe(q Query, fn func(Result)) *Subscription {
	s := &Subscription{c: c, key: q.Key, fn: fn, active: true}

	c.mu.Lock()
	e := c.lookup(q)
	e.subs[s] = struct{}{}

	var (
		gen   uint64
		fetch Fetcher
	)
	if e.has {
		s.push(Result{Data: e.data})
	} else {
		s.push(Result{Data: e.data, IsLoading: true})
		gen, fetch = e.gen, e.fetch
	}
	c.mu.Unlock()

	s.flush()
	if fetch != nil {
		c.start(q.Key, gen, fetch)
	}

	return s
}

// Unsubscribe stops delivery. A fetch already running is not aborted.
func (s *Subscription) Unsubscribe() {
	s.c.mu.Lock()
	if e, ok := s.c.entries[s.key]; ok {
		delete(e.subs, s)
	}
	s.c.mu.Unlock()

	s.detach()
}

func (s *Subscription) detach() {
	s.mu.Lock()
	s.active = false
	s.pending = nil
	s.mu.Unlock()
}

func (s *Subscription) push(res Result) {
	s.mu.Lock()
	if s.active {
		s.pending = append(s.pending, res)
	}
	s.mu.Unlock()
}

// flush delivers queued results in the order they were queued.
func (s *Subscription) flush() {
	s.deliver.Lock()
	defer s.deliver.Unlock()

	for {
		s.mu.Lock()
		if !s.active || len(s.pending) == 0 {
			s.mu.Unlock()
			return
		}
		res := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.fn(res)
	}
}
