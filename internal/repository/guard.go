package repository

import (
	"context"
	"sync"

	"walletkit/internal/domain"
)

// guard serialises one repository's cache access.
type guard struct {
	mu sync.Mutex
}

// commit applies write under the lock. A caller whose context is already done
// does not take the lock and nothing is written.
func (g *guard) commit(ctx context.Context, write func() error) error {
	if err := ctx.Err(); err != nil {
		return domain.NetworkError(err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return write()
}

// locked runs fn under the lock.
func (g *guard) locked(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}
