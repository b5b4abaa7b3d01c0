package config

import (
	"errors"
	"fmt"
	"os"

	"terrain-viewer/internal/noise"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the viewer looks for settings, relative to the working directory.
const DefaultPath = "config/terrain.yaml"

var ErrInvalidSettings = errors.New("invalid settings")

// NoiseSettings selects and shapes the noise backend.
type NoiseSettings struct {
	Kind        string  `yaml:"kind"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// TerrainSettings controls heightmap generation.
type TerrainSettings struct {
	Size        int           `yaml:"size"`
	Seed        int32         `yaml:"seed"`
	NoiseScale  float64       `yaml:"noise_scale"`
	Extent      float64       `yaml:"extent"`
	HeightScale float32       `yaml:"height_scale"`
	Clamp       bool          `yaml:"clamp"`
	Workers     int           `yaml:"workers"`
	Noise       NoiseSettings `yaml:"noise"`
}

type WindowSettings struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FPSLimit int    `yaml:"fps_limit"`
	VSync    bool   `yaml:"vsync"`
}

type CameraSettings struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// SkyboxSettings: an empty Dir draws a generated gradient sky.
type SkyboxSettings struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Settings is the full viewer configuration.
type Settings struct {
	Terrain TerrainSettings `yaml:"terrain"`
	Window  WindowSettings  `yaml:"window"`
	Camera  CameraSettings  `yaml:"camera"`
	Skybox  SkyboxSettings  `yaml:"skybox"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Terrain: TerrainSettings{
			Size:        128,
			Seed:        0,
			NoiseScale:  0.5,
			Extent:      20,
			HeightScale: 4,
			Workers:     4,
			Noise: NoiseSettings{
				Kind:        string(noise.KindGradient),
				Octaves:     1,
				Persistence: 0.5,
				Lacunarity:  2,
			},
		},
		Window: WindowSettings{
			Width:    800,
			Height:   600,
			Title:    "Terrain Viewer",
			FPSLimit: 144,
		},
		Camera: CameraSettings{
			Position:    [3]float32{0, 8, 18},
			Yaw:         -90,
			Pitch:       -25,
			Speed:       5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Skybox: SkyboxSettings{Enabled: true},
	}
}

// Load reads YAML settings over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, s.Validate()
}

// Save writes the settings as YAML.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values generation and rendering depend on.
func (s Settings) Validate() error {
	t := s.Terrain
	if t.Size < 2 {
		return fmt.Errorf("%w: terrain.size %d < 2", ErrInvalidSettings, t.Size)
	}
	if t.Extent <= 0 {
		return fmt.Errorf("%w: terrain.extent %v", ErrInvalidSettings, t.Extent)
	}
	if _, err := noise.ParseKind(t.Noise.Kind); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	return nil
}

// Source builds the configured noise source for a seed.
func (t TerrainSettings) Source(seed int32) (noise.Source, error) {
	kind, err := noise.ParseKind(t.Noise.Kind)
	if err != nil {
		return nil, err
	}
	base, err := noise.New(kind, seed, t.Clamp)
	if err != nil {
		return nil, err
	}
	if t.Noise.Octaves <= 1 {
		return base, nil
	}
	return noise.Fractal{
		Base:        base,
		Octaves:     t.Noise.Octaves,
		Persistence: t.Noise.Persistence,
		Lacunarity:  t.Noise.Lacunarity,
	}, nil
}
