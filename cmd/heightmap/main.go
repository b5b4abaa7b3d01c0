// Command heightmap generates a terrain once and exports it as a PNG
// heightmap and/or a Wavefront OBJ mesh.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/heightmap"

	"github.com/xlab/closer"
)

type options struct {
	configPath string
	size       int
	seed       int
	scale      float64
	extent     float64
	noise      string
	octaves    int
	clamp      bool
	workers    int
	pngPath    string
	pngSize    int
	objPath    string

	// flags given explicitly on the command line
	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("heightmap", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.configPath, "config", config.DefaultPath, "settings file (YAML); missing file uses defaults")
	fs.IntVar(&o.size, "size", 0, "grid points per side (>= 2)")
	fs.IntVar(&o.seed, "seed", 0, "noise seed")
	fs.Float64Var(&o.scale, "scale", 0, "noise frequency multiplier")
	fs.Float64Var(&o.extent, "extent", 0, "horizontal extent in world units")
	fs.StringVar(&o.noise, "noise", "", "noise backend: gradient, simplex or classic")
	fs.IntVar(&o.octaves, "octaves", 0, "fractal octaves (1 = plain noise)")
	fs.BoolVar(&o.clamp, "clamp", false, "clamp heights to be non-negative")
	fs.IntVar(&o.workers, "workers", 0, "sampling goroutines")
	fs.StringVar(&o.pngPath, "png", "", "write a 16-bit grayscale heightmap PNG")
	fs.IntVar(&o.pngSize, "png-size", 0, "PNG width/height in pixels (default: grid size)")
	fs.StringVar(&o.objPath, "obj", "", "write the triangle mesh as Wavefront OBJ")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides settings with the flags that were given
func (o options) apply(s config.Settings) config.Settings {
	t := &s.Terrain
	if o.set["size"] {
		t.Size = o.size
	}
	if o.set["seed"] {
		t.Seed = int32(o.seed)
	}
	if o.set["scale"] {
		t.NoiseScale = o.scale
	}
	if o.set["extent"] {
		t.Extent = o.extent
	}
	if o.set["noise"] {
		t.Noise.Kind = o.noise
	}
	if o.set["octaves"] {
		t.Noise.Octaves = o.octaves
	}
	if o.set["clamp"] {
		t.Clamp = o.clamp
	}
	if o.set["workers"] {
		t.Workers = o.workers
	}
	return s
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	s, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	s = o.apply(s)
	if err := s.Validate(); err != nil {
		return err
	}

	t := s.Terrain
	src, err := t.Source(t.Seed)
	if err != nil {
		return err
	}

	start := time.Now()
	m := heightmap.Mesher{Source: src, Workers: t.Workers}
	grid, mesh, err := m.Generate(heightmap.Params{Size: t.Size, NoiseScale: t.NoiseScale, Extent: t.Extent})
	if err != nil {
		return err
	}
	lo, hi := grid.MinMax()
	fmt.Fprintf(stdout, "size %d seed %d noise %s: %d vertices, %d triangles, height %.4f..%.4f (%v)\n",
		grid.Size, t.Seed, t.Noise.Kind, mesh.VertexCount(), mesh.TriangleCount(), lo, hi, time.Since(start).Round(time.Microsecond))
	slope := heightmap.SlopeStats(mesh)
	fmt.Fprintf(stdout, "slope: mean %.1f deg, max %.1f deg\n", slope.Mean, slope.Max)

	if o.pngPath != "" {
		size := o.pngSize
		if size <= 0 {
			size = grid.Size
		}
		if err := writeFile(o.pngPath, func(w io.Writer) error { return heightmap.EncodePNG(w, grid, size) }); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", o.pngPath, size, size)
	}
	if o.objPath != "" {
		if err := writeFile(o.objPath, func(w io.Writer) error { return heightmap.EncodeOBJ(w, mesh) }); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", o.objPath)
	}
	return nil
}

// writeFile writes through a buffer and removes the file if encoding fails
func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return w.Flush()
}

func main() {
	defer closer.Close()

	closer.Checked(func() error {
		err := run(os.Args[1:], os.Stdout, os.Stderr)
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}, true)
}
