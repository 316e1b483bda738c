// Package assets handles source mesh loading and caching.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Faultbox/midgard-fur/pkg/formats"
	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

var (
	ErrNotFound         = errors.New("mesh file not found")
	ErrUnknownPrimitive = errors.New("unknown primitive")
)

// Source names a mesh: an OBJ file when Path is set, otherwise a built-in
// primitive scaled by Size.
type Source struct {
	Path      string
	Primitive string
	Size      float32
}

func (s Source) String() string {
	if s.Path != "" {
		return s.Path
	}
	return fmt.Sprintf("%s(%g)", s.Primitive, s.Size)
}

// Manager loads meshes and hands out the same instance for the same source,
// so mesh IDs stay stable across config reloads.
type Manager struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddSearchDir adds a directory relative OBJ paths are resolved against.
// Directories are searched in reverse order (last added = highest priority).
func (m *Manager) AddSearchDir(dir string) {
	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()
}

// Load returns the mesh for src.
func (m *Manager) Load(src Source) (*mesh.Mesh, error) {
	if src.Path == "" {
		return m.primitive(src.Primitive, src.Size)
	}

	path, err := m.resolve(src.Path)
	if err != nil {
		return nil, err
	}
	key := "obj:" + path
	if msh, ok := m.cache.Get(key); ok {
		return msh, nil
	}

	msh, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	m.cache.Set(key, msh)
	return msh, nil
}

func (m *Manager) primitive(name string, size float32) (*mesh.Mesh, error) {
	if size <= 0 {
		size = 1
	}
	key := fmt.Sprintf("prim:%s:%g", name, size)
	if msh, ok := m.cache.Get(key); ok {
		return msh, nil
	}
	msh, ok := mesh.Primitive(name, size)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrimitive, name)
	}
	m.cache.Set(key, msh)
	return msh, nil
}

func (m *Manager) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return path, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		candidate := filepath.Join(m.dirs[i], path)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Abs(candidate)
		}
	}
	if _, err := os.Stat(path); err == nil {
		return filepath.Abs(path)
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

// Forget drops a cached OBJ so the next Load re-reads it from disk.
func (m *Manager) Forget(path string) {
	if abs, err := m.resolve(path); err == nil {
		m.cache.Delete("obj:" + abs)
	}
}

// Close drops every cached mesh.
func (m *Manager) Close() {
	m.mu.Lock()
	m.dirs = nil
	m.mu.Unlock()
	m.cache.Clear()
}

// Stats returns cache hits and misses.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded meshes.
type Cache struct {
	data map[string]*mesh.Mesh
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*mesh.Mesh),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*mesh.Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msh, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return msh, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, msh *mesh.Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = msh
}

// Delete removes an item from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*mesh.Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
