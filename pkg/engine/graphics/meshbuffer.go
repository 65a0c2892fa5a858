// Package graphics holds small CPU-side rendering primitives shared by
// renderer backends.
package graphics

// VertexSprite is the vertex layout for screen-space sprite/quad batching:
// position, texture coordinate, and premultiplied color.
type VertexSprite struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// MeshBuffer is a growable typed vertex/element buffer. Backends fill one per
// frame and upload or draw its contents in a single call. The version counter
// bumps on every mutation so cached GPU-side copies can tell when they are
// stale.
type MeshBuffer[V any] struct {
	elems   []V
	version uint64
}

// NewMeshBuffer returns a buffer with capacity for n elements.
func NewMeshBuffer[V any](n int) *MeshBuffer[V] {
	return &MeshBuffer[V]{elems: make([]V, 0, n)}
}

// Append adds elements to the buffer.
func (b *MeshBuffer[V]) Append(vs ...V) {
	b.elems = append(b.elems, vs...)
	b.version++
}

// Reset empties the buffer, keeping its backing storage.
func (b *MeshBuffer[V]) Reset() {
	if len(b.elems) == 0 {
		return
	}
	b.elems = b.elems[:0]
	b.version++
}

// Len returns the current element count.
func (b *MeshBuffer[V]) Len() int { return len(b.elems) }

// Elems returns the buffer contents. The slice is only valid until the next
// Append or Reset.
func (b *MeshBuffer[V]) Elems() []V { return b.elems }

// Version returns the mutation counter.
func (b *MeshBuffer[V]) Version() uint64 { return b.version }

// SpriteBuffer is the sprite-vertex specialization used by quad batchers.
type SpriteBuffer = MeshBuffer[VertexSprite]

// NewSpriteBuffer returns a sprite buffer with capacity for n vertices.
func NewSpriteBuffer(n int) *SpriteBuffer {
	return NewMeshBuffer[VertexSprite](n)
}
