package terrain

import (
	"testing"

	"terrain-viewer/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func TestModelMatrixScalesOnlyHeight(t *testing.T) {
	m := ModelMatrix(4)
	p := m.Mul4x1(mgl32.Vec4{1, 0.5, -2, 1})
	if p != (mgl32.Vec4{1, 2, -2, 1}) {
		t.Errorf("scaled point = %v", p)
	}
	if ModelMatrix(0) != mgl32.Ident4() {
		t.Errorf("zero height scale should be identity")
	}
}

func TestGLPolygonMode(t *testing.T) {
	cases := map[config.PolygonMode]uint32{
		config.PolygonFill:  gl.FILL,
		config.PolygonLine:  gl.LINE,
		config.PolygonPoint: gl.POINT,
	}
	for mode, want := range cases {
		if got := GLPolygonMode(mode); got != want {
			t.Errorf("GLPolygonMode(%s) = %#x, want %#x", mode, got, want)
		}
	}
}
