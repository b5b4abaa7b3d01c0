package heightmap

import (
	"bufio"
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestEncodePNGDimensions(t *testing.T) {
	grid, _, err := Generate(16, 3, 0.4, 8)
	if err != nil {
		t.Fatal(err)
	}

	for _, outSize := range []int{0, 16, 64} {
		var buf bytes.Buffer
		if err := EncodePNG(&buf, grid, outSize); err != nil {
			t.Fatalf("EncodePNG(%d) failed: %v", outSize, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		want := outSize
		if want == 0 {
			want = grid.Size
		}
		if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
			t.Errorf("outSize %d: image is %dx%d, want %dx%d", outSize, b.Dx(), b.Dy(), want, want)
		}
		if img.ColorModel() != color.Gray16Model {
			t.Errorf("outSize %d: color model is not 16-bit gray", outSize)
		}
	}
}

func TestGrayImageExtremes(t *testing.T) {
	g := &HeightGrid{Size: 2, Step: 1, Extent: 1, Heights: []float32{-2, 0, 0, 2}}
	img := GrayImage(g)
	if v := img.Gray16At(0, 0).Y; v != 0 {
		t.Errorf("lowest sample = %d, want 0", v)
	}
	if v := img.Gray16At(1, 1).Y; v != 0xffff {
		t.Errorf("highest sample = %d, want 65535", v)
	}
}

func TestEncodeOBJCounts(t *testing.T) {
	_, mesh, err := Generate(4, 9, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeOBJ(&buf, mesh); err != nil {
		t.Fatal(err)
	}

	var verts, faces int
	var firstFace string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			if faces == 0 {
				firstFace = line
			}
			faces++
		}
	}
	if verts != 54 || faces != 18 {
		t.Errorf("got %d vertices / %d faces, want 54 / 18", verts, faces)
	}
	if firstFace != "f 1 2 3" {
		t.Errorf("first face = %q, want %q", firstFace, "f 1 2 3")
	}
}
