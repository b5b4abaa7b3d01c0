package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CubemapFaces lists face file names in GL_TEXTURE_CUBE_MAP_POSITIVE_X + i order.
var CubemapFaces = [6]string{"right", "left", "top", "bottom", "front", "back"}

var faceExtensions = []string{".png", ".jpg", ".jpeg"}

var (
	cubemapCache = make(map[string]uint32)
	cacheMutex   sync.RWMutex
)

// LoadCubemapImages decodes the six faces found in dir.
func LoadCubemapImages(dir string) ([6]*image.RGBA, error) {
	var faces [6]*image.RGBA
	for i, name := range CubemapFaces {
		path, err := findFace(dir, name)
		if err != nil {
			return faces, err
		}
		img, err := loadRGBA(path)
		if err != nil {
			return faces, err
		}
		faces[i] = img
	}

	size := faces[0].Bounds().Size()
	if size.X != size.Y {
		return faces, fmt.Errorf("cubemap face %s is not square: %v", CubemapFaces[0], size)
	}
	for i, f := range faces {
		if f.Bounds().Size() != size {
			return faces, fmt.Errorf("cubemap face %s is %v, want %v", CubemapFaces[i], f.Bounds().Size(), size)
		}
	}
	return faces, nil
}

func findFace(dir, name string) (string, error) {
	for _, ext := range faceExtensions {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("cubemap face %q not found in %s", name, dir)
}

func loadRGBA(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// GradientFaces paints a vertical sky gradient onto six size x size faces:
// top colour overhead, horizon colour at eye level, bottom colour underfoot.
func GradientFaces(size int, top, horizon, bottom mgl32.Vec3) [6]*image.RGBA {
	var faces [6]*image.RGBA
	for i := range faces {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			var c mgl32.Vec3
			switch i {
			case 2: // top
				c = top
			case 3: // bottom
				c = bottom
			default:
				// y grows downwards; map to elevation in [-1, 1]
				e := 1 - 2*(float32(y)+0.5)/float32(size)
				if e >= 0 {
					c = horizon.Add(top.Sub(horizon).Mul(e))
				} else {
					c = horizon.Add(bottom.Sub(horizon).Mul(-e))
				}
			}
			px := toRGBA(c)
			for x := 0; x < size; x++ {
				img.SetRGBA(x, y, px)
			}
		}
		faces[i] = img
	}
	return faces
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c.X()), G: ch(c.Y()), B: ch(c.Z()), A: 0xff}
}

// UploadCubemap creates a cube map texture from six equally sized faces.
func UploadCubemap(faces [6]*image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texture)

	for i, f := range faces {
		size := f.Rect.Size()
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(size.X),
			int32(size.Y),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(f.Pix),
		)
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return texture
}

// GetCubemap returns a cached cube map for dir, loading it on first use.
func GetCubemap(dir string) (uint32, error) {
	cacheMutex.RLock()
	if tex, ok := cubemapCache[dir]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := cubemapCache[dir]; ok {
		return tex, nil
	}

	faces, err := LoadCubemapImages(dir)
	if err != nil {
		return 0, err
	}
	tex := UploadCubemap(faces)
	cubemapCache[dir] = tex
	return tex, nil
}

// ReleaseCubemaps deletes every cached cube map.
func ReleaseCubemaps() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	for dir, tex := range cubemapCache {
		gl.DeleteTextures(1, &tex)
		delete(cubemapCache, dir)
	}
}
