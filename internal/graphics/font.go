package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is a baked glyph atlas, not yet uploaded
type FontAtlas struct {
	Image      *image.Alpha
	Characters map[rune]FontCharacter
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	Characters map[rune]FontCharacter
}

const atlasWidth = 512

// BakeFont rasterises printable ASCII from a TrueType/OpenType font into an alpha atlas.
// A nil ttf uses Go Regular.
func BakeFont(ttf []byte, fontPixels int) (*FontAtlas, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	var runes []rune
	for r := rune(32); r <= rune(126); r++ {
		runes = append(runes, r)
	}

	padding := 1

	// First pass: pack rows to find the atlas height
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, r := range runes {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	atlasH := nextPow2(offsetY + rowHeight + padding)

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	characters := make(map[rune]FontCharacter, len(runes))

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil {
			continue
		}
		gw := dr.Dx()
		gh := dr.Dy()
		adv := int(math.Round(float64(advance) / 64.0))
		if gw == 0 || gh == 0 {
			// Space or non-drawable glyph; still record advance
			characters[r] = FontCharacter{
				BearingX: float32(dr.Min.X),
				BearingY: float32(-dr.Min.Y),
				Advance:  adv,
			}
			continue
		}

		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}

		dstRect := image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh)
		draw.Draw(atlasImg, dstRect, mask, maskp, draw.Src)

		characters[r] = FontCharacter{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}

		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}

	return &FontAtlas{Image: atlasImg, Characters: characters}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Upload sends the atlas to OpenGL as a single-channel texture
func (a *FontAtlas) Upload() *FontAtlasInfo {
	w, h := a.Image.Rect.Dx(), a.Image.Rect.Dy()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &FontAtlasInfo{TextureID: texture, AtlasW: w, AtlasH: h, Characters: a.Characters}
}

// FontRenderer renders ASCII text strings using a prebuilt atlas
type FontRenderer struct {
	atlas      *FontAtlasInfo
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer creates the renderer and compiles the font shader
func NewFontRenderer(atlas *FontAtlasInfo, width, height int) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader("font")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:  atlas,
		shader: shader,
	}
	fr.SetViewport(width, height)
	fr.initGL()
	return fr, nil
}

// SetViewport resets the pixel-space projection
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// RenderLines draws lines of text starting at (x, yStart), each lineStep pixels below the last.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	totalChars := 0
	for _, l := range lines {
		totalChars += len(l)
	}
	if totalChars == 0 {
		return
	}

	// 6 verts per char, 4 floats per vert
	vertices := make([]float32, 0, totalChars*6*4)
	y := yStart
	for _, line := range lines {
		vertices = fr.appendVertices(vertices, line, x, y, scale)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// orphan the buffer to avoid stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// Measure returns the width and height in pixels the text will occupy at the given scale.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return measure(fr.atlas.Characters, text, scale)
}

func measure(chars map[rune]FontCharacter, text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := chars[r]
		if !ok {
			fc = chars[' ']
		}
		width += float32(fc.Advance) * scale
		if fc.Height*scale > maxH {
			maxH = fc.Height * scale
		}
	}
	return width, maxH
}

func (fr *FontRenderer) appendVertices(vertices []float32, text string, x, y, scale float32) []float32 {
	aw := float32(fr.atlas.AtlasW)
	ah := float32(fr.atlas.AtlasH)
	for _, r := range text {
		fc, ok := fr.atlas.Characters[r]
		if !ok {
			// Skip missing glyphs
			x += float32(fr.atlas.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 {
			xPos := x + fc.BearingX*scale
			yPos := y - fc.BearingY*scale
			w := fc.Width * scale
			h := fc.Height * scale

			u0 := fc.AtlasX / aw
			v0 := fc.AtlasY / ah
			u1 := (fc.AtlasX + fc.Width) / aw
			v1 := (fc.AtlasY + fc.Height) / ah

			vertices = append(vertices,
				xPos, yPos+h, u0, v1,
				xPos, yPos, u0, v0,
				xPos+w, yPos, u1, v0,

				xPos, yPos+h, u0, v1,
				xPos+w, yPos, u1, v0,
				xPos+w, yPos+h, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

// Dispose releases GL objects
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.atlas != nil && fr.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &fr.atlas.TextureID)
	}
	fr.shader.Delete()
}
