package fur

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-fur/internal/fur/shell"
)

// Option configures an Assembly.
type Option func(*Assembly)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(a *Assembly) {
		if log != nil {
			a.log = log
		}
	}
}

// WithPool shares a shell pool between assemblies. The caller keeps
// ownership and Close does not purge it.
func WithPool(pool *shell.Pool) Option {
	return func(a *Assembly) {
		if pool != nil {
			a.pool = pool
			a.ownsPool = false
		}
	}
}

// WithWindSeed seeds the wind noise phases.
func WithWindSeed(seed uint64) Option {
	return func(a *Assembly) { a.windSeed = seed }
}

// WithSettings sets the initial settings.
func WithSettings(s Settings) Option {
	return func(a *Assembly) { a.settings = s.Clamp() }
}

// WithWorkers sets how many goroutines build fins. 1 builds sequentially,
// 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(a *Assembly) { a.workers = max(n, 0) }
}
