package service

import (
	"sync"

	"github.com/pkordes/guidebook/internal/domain"
)

// Batch is one accepted search result set.
type Batch struct {
	Seq      uint64
	Category domain.Category
	Records  []domain.BusinessRecord
}

type boardEntry struct {
	issued uint64
	batch  *Batch
}

// ResultBoard remembers the latest accepted search batch per session key.
//
// Every search takes a sequence token from Begin before it starts. When the
// search finishes, Offer stores its batch only if no later search for the
// same key has begun in the meantime, so a slow response can never replace
// a newer one. It is safe for concurrent use.
type ResultBoard struct {
	mu      sync.Mutex
	entries map[string]*boardEntry
}

// NewResultBoard returns an empty board.
func NewResultBoard() *ResultBoard {
	return &ResultBoard{entries: make(map[string]*boardEntry)}
}

// Begin issues the next sequence token for key. Tokens start at 1.
func (b *ResultBoard) Begin(key string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok {
		e = &boardEntry{}
		b.entries[key] = e
	}
	e.issued++
	return e.issued
}

// Offer stores batch for key if seq is still the latest token issued for it.
// It reports whether the batch was accepted.
func (b *ResultBoard) Offer(key string, seq uint64, batch Batch) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok || e.issued != seq {
		return false
	}
	batch.Seq = seq
	e.batch = &batch
	return true
}

// Latest returns the last accepted batch for key.
func (b *ResultBoard) Latest(key string) (Batch, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok || e.batch == nil {
		return Batch{}, false
	}
	return *e.batch, true
}

// Forget drops everything stored for key. A search still in flight for key
// will have its Offer rejected.
func (b *ResultBoard) Forget(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
}
