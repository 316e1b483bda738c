package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-fur/pkg/mesh"
)

// gpuMesh is an uploaded triangle soup.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
	used  bool
}

func upload(vertices []Vertex) *gpuMesh {
	m := &gpuMesh{count: int32(len(vertices))}
	if len(vertices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(vertexSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, offsetPosition)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, offsetNormal)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, offsetUV)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, offsetRandom)

	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.vao, m.vbo, m.count = 0, 0, 0
}

// bufferCache keeps one GPU upload per geometry. Entries not touched during
// a frame are deleted at the end of it, so regenerated layers replace the
// stale ones.
type bufferCache struct {
	meshes  map[*mesh.Geometry]*gpuMesh
	uploads int
}

func newBufferCache() *bufferCache {
	return &bufferCache{meshes: make(map[*mesh.Geometry]*gpuMesh)}
}

func (c *bufferCache) get(g *mesh.Geometry) *gpuMesh {
	if m, ok := c.meshes[g]; ok {
		m.used = true
		return m
	}
	m := upload(Interleave(g))
	m.used = true
	c.uploads++
	c.meshes[g] = m
	return m
}

// sweep deletes entries that were not used since the last sweep.
func (c *bufferCache) sweep() int {
	n := 0
	for g, m := range c.meshes {
		if !m.used || g.Disposed() {
			m.delete()
			delete(c.meshes, g)
			n++
			continue
		}
		m.used = false
	}
	return n
}

func (c *bufferCache) clear() {
	for g, m := range c.meshes {
		m.delete()
		delete(c.meshes, g)
	}
}
