package fin

import (
	"runtime"
	"sync"

	"github.com/Faultbox/midgard-fur/internal/fur/taper"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// minChunk keeps tiny meshes from being split across goroutines.
const minChunk = 256

// BuildParallel is Build with fins extruded by up to workers goroutines
// over contiguous edge ranges. The output matches Build exactly.
// workers <= 0 uses GOMAXPROCS.
func BuildParallel(src *mesh.Mesh, p Params, workers int) ([]Fin, error) {
	prepared, edges, p, err := prepare(src, p)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	scale := taper.Scale(tipPosition, p.Taper)
	fins := make([]Fin, len(edges))

	chunk := max((len(edges)+workers-1)/workers, minChunk)
	var wg sync.WaitGroup
	for lo := 0; lo < len(edges); lo += chunk {
		hi := min(lo+chunk, len(edges))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fins[i] = extrude(prepared, edges[i], p.Length, scale, p.Taper.Enabled)
			}
		}(lo, hi)
	}
	wg.Wait()
	return fins, nil
}
