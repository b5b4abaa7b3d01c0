package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func writeFace(t *testing.T, dir, name string, size int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name+".png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCubemapImages(t *testing.T) {
	dir := t.TempDir()
	for i, name := range CubemapFaces {
		writeFace(t, dir, name, 4, color.RGBA{R: uint8(i * 40), A: 255})
	}

	faces, err := LoadCubemapImages(dir)
	if err != nil {
		t.Fatalf("LoadCubemapImages failed: %v", err)
	}
	for i, f := range faces {
		if got := f.RGBAAt(1, 1).R; got != uint8(i*40) {
			t.Errorf("face %s has red %d, want %d", CubemapFaces[i], got, i*40)
		}
	}
}

func TestLoadCubemapImagesMissingFace(t *testing.T) {
	dir := t.TempDir()
	for _, name := range CubemapFaces[:5] {
		writeFace(t, dir, name, 4, color.RGBA{A: 255})
	}
	if _, err := LoadCubemapImages(dir); err == nil {
		t.Errorf("expected error for missing back face")
	}
}

func TestLoadCubemapImagesSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	for i, name := range CubemapFaces {
		size := 4
		if i == 3 {
			size = 8
		}
		writeFace(t, dir, name, size, color.RGBA{A: 255})
	}
	if _, err := LoadCubemapImages(dir); err == nil {
		t.Errorf("expected error for mismatched face sizes")
	}
}

func TestGradientFaces(t *testing.T) {
	top := mgl32.Vec3{0, 0, 1}
	horizon := mgl32.Vec3{1, 1, 1}
	bottom := mgl32.Vec3{0, 0, 0}
	faces := GradientFaces(16, top, horizon, bottom)

	if c := faces[2].RGBAAt(3, 3); c != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top face = %v, want pure blue", c)
	}
	if c := faces[3].RGBAAt(3, 3); c != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("bottom face = %v, want black", c)
	}

	side := faces[0]
	upper := side.RGBAAt(0, 0)
	lower := side.RGBAAt(0, 15)
	if upper.R >= 128 || upper.B < 200 {
		t.Errorf("upper side row should be near the top colour, got %v", upper)
	}
	if lower.R >= 128 || lower.B >= 128 {
		t.Errorf("lower side row should be near the bottom colour, got %v", lower)
	}
	mid := side.RGBAAt(0, 8)
	if mid.R < 200 {
		t.Errorf("middle side row should be near the horizon colour, got %v", mid)
	}
}
