package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simplesocial/socialnet/pkg/socialnet"
)

// Library is an in-memory implementation of the socialnet.ImageLibrary
// interface. Assets are seeded through Put and resolved by reference.
type Library struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

// New creates a new in-memory image library
func New() *Library {
	return &Library{
		assets: make(map[string][]byte),
	}
}

// Put stores asset bytes under a reference
func (l *Library) Put(ref string, data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.assets[ref] = append([]byte(nil), data...)
}

// Resolve returns the asset stored under ref
func (l *Library) Resolve(ctx context.Context, ref string) (*socialnet.ImageAsset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	data, exists := l.assets[ref]
	if !exists {
		return nil, fmt.Errorf("image asset not found: %s", ref)
	}

	return &socialnet.ImageAsset{
		Ref:  ref,
		Data: append([]byte(nil), data...),
	}, nil
}
