package heightmap

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/draw"
)

// GrayImage renders the normalised grid as a 16-bit grayscale image, row i at y = i.
func GrayImage(g *HeightGrid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.Size, g.Size))
	norm := g.Normalized()
	for i := 0; i < g.Size; i++ {
		for j := 0; j < g.Size; j++ {
			v := norm[i*g.Size+j]
			img.SetGray16(j, i, color.Gray16{Y: uint16(v*0xffff + 0.5)})
		}
	}
	return img
}

// EncodePNG writes the grid as a grayscale PNG. outSize > 0 and different from
// the grid size resamples with Catmull-Rom.
func EncodePNG(w io.Writer, g *HeightGrid, outSize int) error {
	var img image.Image = GrayImage(g)
	if outSize > 0 && outSize != g.Size {
		dst := image.NewGray16(image.Rect(0, 0, outSize, outSize))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeOBJ writes the mesh as Wavefront OBJ, one face per triangle in emission order.
func EncodeOBJ(w io.Writer, m *MeshBuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# terrain mesh: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())

	buf := make([]byte, 0, 64)
	for k, n := 0, m.VertexCount(); k < n; k++ {
		v := m.Vertex(k)
		buf = append(buf[:0], 'v')
		for _, c := range v {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(c), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	// OBJ indices are 1-based
	for t, n := 0, m.TriangleCount(); t < n; t++ {
		base := 3*t + 1
		fmt.Fprintf(bw, "f %d %d %d\n", base, base+1, base+2)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}
