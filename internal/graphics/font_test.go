package graphics

import "testing"

func TestBakeFontDefault(t *testing.T) {
	atlas, err := BakeFont(nil, 18)
	if err != nil {
		t.Fatalf("BakeFont failed: %v", err)
	}
	if len(atlas.Characters) != 95 {
		t.Errorf("got %d glyphs, want 95 printable ASCII", len(atlas.Characters))
	}

	b := atlas.Image.Bounds()
	if b.Dx() != atlasWidth {
		t.Errorf("atlas width = %d, want %d", b.Dx(), atlasWidth)
	}
	if h := b.Dy(); h&(h-1) != 0 {
		t.Errorf("atlas height %d is not a power of two", h)
	}

	for r, fc := range atlas.Characters {
		if fc.AtlasX+fc.Width > float32(b.Dx()) || fc.AtlasY+fc.Height > float32(b.Dy()) {
			t.Errorf("glyph %q overflows atlas: %+v", r, fc)
		}
	}

	if sp := atlas.Characters[' ']; sp.Width != 0 || sp.Advance <= 0 {
		t.Errorf("space glyph = %+v, want zero size with positive advance", sp)
	}
}

func TestBakeFontRejectsGarbage(t *testing.T) {
	if _, err := BakeFont([]byte("not a font"), 12); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestMeasure(t *testing.T) {
	atlas, err := BakeFont(nil, 16)
	if err != nil {
		t.Fatal(err)
	}
	w1, h1 := measure(atlas.Characters, "Seed", 1)
	w2, _ := measure(atlas.Characters, "Seed", 2)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("measure returned %f x %f", w1, h1)
	}
	if w2 != 2*w1 {
		t.Errorf("scaled width = %f, want %f", w2, 2*w1)
	}

	// missing glyphs advance like a space
	ws, _ := measure(atlas.Characters, " ", 1)
	wm, _ := measure(atlas.Characters, "é", 1)
	if ws != wm {
		t.Errorf("missing glyph width = %f, want space width %f", wm, ws)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
