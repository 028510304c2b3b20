// Package permit bounds the number of simultaneously in-flight booking
// attempts per requester identity. It narrows the read-then-write race
// window against the row store; it does not close it (two different
// identities can still race on the same slot).
package permit

import (
	"github.com/puzpuzpuz/xsync/v3"
)

type Guard struct {
	ceiling  int
	inflight *xsync.MapOf[string, int]
}

func NewGuard(ceiling int) *Guard {
	if ceiling < 1 {
		ceiling = 1
	}
	return &Guard{
		ceiling:  ceiling,
		inflight: xsync.NewMapOf[string, int](),
	}
}

// TryAcquire takes one permit for identity. It returns false, holding no
// permit, once the counter would exceed the ceiling. The increment happens
// atomically inside the map's per-key compute, so concurrent callers
// cannot both observe the last free permit.
func (g *Guard) TryAcquire(identity string) bool {
	acquired := false
	g.inflight.Compute(identity, func(current int, loaded bool) (int, bool) {
		if current >= g.ceiling {
			return current, false
		}
		acquired = true
		return current + 1, false
	})
	return acquired
}

// Release returns one permit. Callers must pair every successful TryAcquire
// with exactly one Release on every exit path; the count never goes below
// zero and the map entry is removed when it reaches zero.
func (g *Guard) Release(identity string) {
	g.inflight.Compute(identity, func(current int, loaded bool) (int, bool) {
		if !loaded || current <= 1 {
			return 0, true
		}
		return current - 1, false
	})
}

// Inflight reports the current counter for identity.
func (g *Guard) Inflight(identity string) int {
	n, _ := g.inflight.Load(identity)
	return n
}
