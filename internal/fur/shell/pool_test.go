package shell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/pkg/math"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

func TestPoolHitReturnsClones(t *testing.T) {
	pool := NewPool(2, 1)
	cube := mesh.NewCube(1)

	first, err := pool.Layers(cube, cubeParams())
	require.NoError(t, err)
	first[0].Geometry.Positions[0] = math.V3(42, 42, 42)

	second, err := pool.Layers(cube, cubeParams())
	require.NoError(t, err)
	assert.NotSame(t, first[0], second[0])
	assert.NotEqual(t, first[0].Geometry.Positions[0], second[0].Geometry.Positions[0])

	fresh, err := BuildAll(cube, cubeParams())
	require.NoError(t, err)
	assert.Equal(t, fresh, second)

	s := pool.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, 1, s.Len)
}

func TestPoolKeyCoversEveryParameter(t *testing.T) {
	pool := NewPool(16, 1)
	cube := mesh.NewCube(1)
	base := cubeParams()

	variants := []Params{
		base,
		{Count: 9, Spacing: base.Spacing, MaxDistance: base.MaxDistance},
		{Count: 8, Spacing: 0.03, MaxDistance: base.MaxDistance},
		{Count: 8, Spacing: base.Spacing, MaxDistance: 0.2},
		{Count: 8, Spacing: base.Spacing, MaxDistance: base.MaxDistance, Taper: taper.Config{Enabled: true}},
		{Count: 8, Spacing: base.Spacing, MaxDistance: base.MaxDistance, Taper: taper.Config{Intensity: 0.5}},
		{Count: 8, Spacing: base.Spacing, MaxDistance: base.MaxDistance, Taper: taper.Config{Curve: taper.CurveLinear}},
		{Count: 8, Spacing: base.Spacing, MaxDistance: base.MaxDistance, Taper: taper.Config{Method: taper.MethodHybrid}},
	}
	for _, v := range variants {
		_, err := pool.Layers(cube, v)
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(len(variants)), pool.Stats().Misses)

	// same parameters on a different mesh instance miss too
	_, err := pool.Layers(mesh.NewCube(1), base)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(variants)+1), pool.Stats().Misses)

	// clamping happens before keying
	_, err = pool.Layers(cube, Params{Count: 2, Spacing: base.Spacing, MaxDistance: base.MaxDistance})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), pool.Stats().Hits)
}

func TestPoolEvictionDisposes(t *testing.T) {
	pool := NewPool(2, 1)
	cube := mesh.NewCube(1)

	p1 := cubeParams()
	_, err := pool.Layers(cube, p1)
	require.NoError(t, err)
	owned, ok := pool.entries.Get(Key{MeshID: cube.ID, Params: p1.Clamp()})
	require.True(t, ok)

	p2, p3 := p1, p1
	p2.Count, p3.Count = 9, 10
	_, err = pool.Layers(cube, p2)
	require.NoError(t, err)
	_, err = pool.Layers(cube, p3)
	require.NoError(t, err)

	s := pool.Stats()
	assert.Equal(t, 2, s.Len)
	assert.Equal(t, uint64(1), s.Released)
	for _, l := range owned {
		assert.True(t, l.Geometry.Disposed(), "oldest entry is disposed on eviction")
	}

	pool.Purge()
	s = pool.Stats()
	assert.Equal(t, 0, s.Len)
	assert.Equal(t, uint64(3), s.Released)
}

func TestPoolConcurrentEvictionKeepsClonesIntact(t *testing.T) {
	// one slot, two meshes: every miss evicts the set another goroutine
	// may be cloning
	pool := NewPool(1, 1)
	meshes := []*mesh.Mesh{mesh.NewSphere(1, 12, 6), mesh.NewSphere(2, 12, 6)}
	params := cubeParams()

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range 20 {
				src := meshes[(w+i)%len(meshes)]
				layers, err := pool.Layers(src, params)
				if !assert.NoError(t, err) {
					return
				}
				for _, l := range layers {
					assert.False(t, l.Geometry.Disposed())
					assert.NotEmpty(t, l.Geometry.Positions)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, pool.Stats().Len, 1)
}
