// Package request carries short-lived values across handlers that run within
// the same platform request. The bag travels on the request context, so its
// lifetime ends with the request; values nobody consumed are simply dropped.
package request

import (
	"context"
	"sync"
)

type ctxKey struct{}

// Bag is a per-request key/value store. A value is written at most once per
// request and consumed at most once by a later handler of the same request.
type Bag struct {
	mu     sync.Mutex
	values map[string]string
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{values: make(map[string]string)}
}

// WithBag returns a context carrying a fresh bag.
func WithBag(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, NewBag())
}

// BagFrom extracts the bag from the context. ok is false outside a request
// scope; handlers treat that as "nothing stashed".
func BagFrom(ctx context.Context) (*Bag, bool) {
	b, ok := ctx.Value(ctxKey{}).(*Bag)
	return b, ok
}

// Stash stores a value under key, replacing any previous value.
func (b *Bag) Stash(key, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
}

// Take removes and returns the value under key. The second result is false
// when nothing was stashed or it was already taken.
func (b *Bag) Take(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	if ok {
		delete(b.values, key)
	}
	return v, ok
}
