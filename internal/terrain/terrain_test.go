package terrain

import (
	"errors"
	"sync"
	"testing"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/heightmap"
)

func smallSettings() config.TerrainSettings {
	s := config.Default().Terrain
	s.Size = 8
	s.Workers = 1
	return s
}

func TestRegenerateSwapsPair(t *testing.T) {
	tr := New(smallSettings())
	if tr.Current().Ready() {
		t.Fatalf("new terrain should be empty")
	}

	if err := tr.Regenerate(7); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	first := tr.Current()
	if !first.Ready() || first.Seed != 7 || first.Version != 1 {
		t.Fatalf("unexpected snapshot %+v", first)
	}
	if got, want := first.Mesh.VertexCount(), 6*7*7; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}

	if err := tr.Regenerate(8); err != nil {
		t.Fatal(err)
	}
	second := tr.Current()
	if second.Version != 2 || second.Seed != 8 {
		t.Errorf("second snapshot = seed %d version %d", second.Seed, second.Version)
	}
	if second.Grid == first.Grid || second.Mesh == first.Mesh {
		t.Errorf("regeneration reused the previous buffers")
	}
}

func TestRegenerateMatchesHeightmapGenerate(t *testing.T) {
	s := smallSettings()
	tr := New(s)
	if err := tr.Regenerate(42); err != nil {
		t.Fatal(err)
	}
	grid, _, err := heightmap.Generate(s.Size, 42, s.NoiseScale, s.Extent)
	if err != nil {
		t.Fatal(err)
	}
	got := tr.Current().Grid
	for k := range grid.Heights {
		if got.Heights[k] != grid.Heights[k] {
			t.Fatalf("height %d = %v, want %v", k, got.Heights[k], grid.Heights[k])
		}
	}
}

func TestFailedRegenerateKeepsPrevious(t *testing.T) {
	tr := New(smallSettings())
	if err := tr.Regenerate(3); err != nil {
		t.Fatal(err)
	}
	before := tr.Current()

	notified := 0
	tr.Subscribe(func(Snapshot) { notified++ })

	bad := smallSettings()
	bad.Size = 1
	tr.SetSettings(bad)
	err := tr.Regenerate(4)
	if !errors.Is(err, heightmap.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}

	after := tr.Current()
	if after.Grid != before.Grid || after.Mesh != before.Mesh || after.Seed != 3 {
		t.Errorf("failed regeneration replaced the current pair")
	}
	if notified != 0 {
		t.Errorf("subscribers notified %d times on failure", notified)
	}
}

func TestSubscribersSeeNewSnapshot(t *testing.T) {
	tr := New(smallSettings())
	var got []Snapshot
	tr.Subscribe(func(s Snapshot) { got = append(got, s) })

	for _, seed := range []int32{1, 2} {
		if err := tr.Regenerate(seed); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[1].Seed != 2 || got[1].Mesh != tr.Current().Mesh {
		t.Errorf("notification does not match current snapshot")
	}
}

func TestConcurrentReaders(t *testing.T) {
	tr := New(smallSettings())
	if err := tr.Regenerate(0); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				s := tr.Current()
				if s.Mesh.VertexCount() != 6*(s.Grid.Size-1)*(s.Grid.Size-1) {
					t.Errorf("mesh and grid out of step")
					return
				}
			}
		}()
	}
	for seed := int32(1); seed <= 5; seed++ {
		if err := tr.Regenerate(seed); err != nil {
			t.Error(err)
		}
	}
	wg.Wait()
}
