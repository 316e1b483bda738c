package shell

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// BuildAllParallel is BuildAll with layers built by up to workers
// goroutines. Layers never share buffers, so the result is identical to
// BuildAll. workers <= 0 uses GOMAXPROCS.
func BuildAllParallel(src *mesh.Mesh, p Params, workers int) ([]*Layer, error) {
	prepared, err := mesh.Prepare(src)
	if err != nil {
		return nil, fmt.Errorf("building shell layers: %w", err)
	}
	p = p.Clamp()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, p.Count)

	layers := make([]*Layer, p.Count)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				layers[i] = build(prepared, i+1, p)
			}
		}()
	}
	for i := range layers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return layers, nil
}
