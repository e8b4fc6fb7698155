package tess

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexBufferLayout(t *testing.T) {
	l := VertexBufferLayout()
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want VertexStepModeVertex", l.StepMode)
	}
	if len(l.Attributes) != 1 {
		t.Fatalf("attributes = %d, want 1", len(l.Attributes))
	}
	a := l.Attributes[0]
	if a.Format != gputypes.VertexFormatFloat32x2 || a.Offset != 0 || a.ShaderLocation != 0 {
		t.Errorf("attribute = %+v, want float32x2 at offset 0, location 0", a)
	}
}

func TestPrimitiveState(t *testing.T) {
	s := PrimitiveState()
	if s.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want TriangleList", s.Topology)
	}
	if s.FrontFace != gputypes.FrontFaceCCW {
		t.Errorf("FrontFace = %v, want CCW", s.FrontFace)
	}
	if s.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want None", s.CullMode)
	}
	if s.StripIndexFormat != nil {
		t.Errorf("StripIndexFormat = %v, want nil for a triangle list", *s.StripIndexFormat)
	}
	if IndexFormat != gputypes.IndexFormatUint16 {
		t.Errorf("IndexFormat = %v, want Uint16", IndexFormat)
	}
}

func TestGeometryBuffer_VertexBytes(t *testing.T) {
	buf := GeometryBuffer{
		Vertices: []Point{Pt(1, 2), Pt(-3.5, 4.25)},
		Indices:  []uint16{0, 1, 0},
	}
	data := buf.VertexBytes()
	if len(data) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 2*VertexStride)
	}
	for i, v := range buf.Vertices {
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[i*8:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(data[i*8+4:]))
		if x != v.X || y != v.Y {
			t.Errorf("vertex %d = (%v, %v), want %v", i, x, y, v)
		}
	}
}

func TestGeometryBuffer_IndexBytes(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint16
		wantLen int
	}{
		{"empty", nil, 0},
		{"one triangle padded", []uint16{1, 2, 3}, 8},
		{"two triangles aligned", []uint16{1, 2, 3, 4, 5, 65535}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := GeometryBuffer{Indices: tt.indices}
			data := buf.IndexBytes()
			if len(data) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(data), tt.wantLen)
			}
			for i, idx := range tt.indices {
				if got := binary.LittleEndian.Uint16(data[2*i:]); got != idx {
					t.Errorf("index %d = %d, want %d", i, got, idx)
				}
			}
			for i := 2 * len(tt.indices); i < len(data); i++ {
				if data[i] != 0 {
					t.Errorf("padding byte %d = %d, want 0", i, data[i])
				}
			}
			if buf.IndexCount() != uint32(len(tt.indices)) {
				t.Errorf("IndexCount() = %d, want %d", buf.IndexCount(), len(tt.indices))
			}
		})
	}
}

func TestGeometryBuffer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		buf     GeometryBuffer
		wantErr bool
	}{
		{"empty", GeometryBuffer{}, false},
		{"triangle", GeometryBuffer{Vertices: []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}, Indices: []uint16{0, 1, 2}}, false},
		{"partial triangle", GeometryBuffer{Vertices: []Point{Pt(0, 0), Pt(1, 0)}, Indices: []uint16{0, 1}}, true},
		{"index out of range", GeometryBuffer{Vertices: []Point{Pt(0, 0), Pt(1, 0)}, Indices: []uint16{0, 1, 2}}, true},
		{"NaN vertex", GeometryBuffer{Vertices: []Point{Pt(float32(math.NaN()), 0)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.buf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
