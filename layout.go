package tess

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the size in bytes of one vertex: two float32 values.
const VertexStride = 8

// IndexFormat is the index format of every GeometryBuffer.
const IndexFormat = gputypes.IndexFormatUint16

// VertexBufferLayout describes the vertex buffer produced by VertexBytes:
// a float32x2 position at shader location 0.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: 0,
			},
		},
	}
}

// PrimitiveState describes how the buffers are assembled: a triangle list
// with counter-clockwise front faces and no culling.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
}

// VertexBytes returns the vertices as little-endian float32 pairs, ready for
// upload into a vertex buffer described by VertexBufferLayout.
func (g GeometryBuffer) VertexBytes() []byte {
	buf := make([]byte, len(g.Vertices)*VertexStride)
	for i, v := range g.Vertices {
		off := i * VertexStride
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], math.Float32bits(v.Y))
	}
	return buf
}

// IndexBytes returns the indices as little-endian uint16 values. The slice
// is zero-padded to a multiple of 4 bytes, as buffer writes require; use
// IndexCount for the draw call.
func (g GeometryBuffer) IndexBytes() []byte {
	n := len(g.Indices) * 2
	buf := make([]byte, (n+3)&^3)
	for i, idx := range g.Indices {
		binary.LittleEndian.PutUint16(buf[2*i:], idx)
	}
	return buf
}
