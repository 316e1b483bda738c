package shell

import (
	"github.com/Faultbox/midgard-fur/internal/cache"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// DefaultPoolSize is the number of layer sets a pool keeps.
const DefaultPoolSize = 8

// Key identifies a cached layer set.
type Key struct {
	MeshID uint64
	Params Params
}

// Pool caches generated layer sets by mesh identity and parameters. The
// pool owns its entries and disposes them on eviction; callers always get
// clones they own. A Pool is safe for concurrent use.
type Pool struct {
	entries *cache.LRU[Key, []*Layer]
	workers int
}

// NewPool creates a pool holding up to size layer sets, DefaultPoolSize
// when size is not positive. Misses are built with BuildAllParallel using
// workers goroutines; workers == 1 builds sequentially.
func NewPool(size, workers int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{
		entries: cache.NewLRU(size, func(_ Key, layers []*Layer) {
			for _, l := range layers {
				l.Dispose()
			}
		}),
		workers: workers,
	}
}

// Layers returns clones of the layer set for src and p, building and
// caching it on a miss.
func (p *Pool) Layers(src *mesh.Mesh, params Params) ([]*Layer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	params = params.Clamp()
	key := Key{MeshID: src.ID, Params: params}

	var out []*Layer
	if p.entries.GetFunc(key, func(cached []*Layer) { out = cloneLayers(cached) }) {
		return out, nil
	}

	var (
		layers []*Layer
		err    error
	)
	if p.workers == 1 {
		layers, err = BuildAll(src, params)
	} else {
		layers, err = BuildAllParallel(src, params, p.workers)
	}
	if err != nil {
		return nil, err
	}
	// clone before Put: once stored, a concurrent Put may evict and
	// dispose the set
	out = cloneLayers(layers)
	p.entries.Put(key, layers)
	return out, nil
}

// Purge disposes every cached layer set.
func (p *Pool) Purge() {
	p.entries.Purge()
}

// Stats returns the pool counters.
func (p *Pool) Stats() cache.Stats {
	return p.entries.Stats()
}

func cloneLayers(layers []*Layer) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}
