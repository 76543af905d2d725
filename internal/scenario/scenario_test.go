package scenario

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khartmann/linesim/internal/sim"
)

const validYAML = `
name: test-line
horizon_hours: 8
stations:
  - name: Stamping
    cycle_time_sec: 30
    mtbf_hours: 50
    mttr_hours: 0.5
    parallel_units: 1
  - name: Welding
    cycle_time_sec: 40
    mtbf_hours: 80
    mttr_hours: 1.0
    parallel_units: 2
`

func TestParse_Valid(t *testing.T) {
	sc, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if sc.Name != "test-line" {
		t.Errorf("Name = %q, want %q", sc.Name, "test-line")
	}
	if sc.HorizonHours != 8 {
		t.Errorf("HorizonHours = %f, want 8", sc.HorizonHours)
	}
	if len(sc.Stations) != 2 {
		t.Fatalf("len(Stations) = %d, want 2", len(sc.Stations))
	}
	if sc.Stations[0].Name != "Stamping" || sc.Stations[1].Name != "Welding" {
		t.Errorf("station order not preserved: %q, %q", sc.Stations[0].Name, sc.Stations[1].Name)
	}
}

func TestParse_UnknownField(t *testing.T) {
	doc := strings.Replace(validYAML, "horizon_hours:", "horizon_days:", 1)
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Parse() accepted unknown field, want error")
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr error
	}{
		{
			name:    "no stations",
			mutate:  func(doc string) string { return "name: empty\nhorizon_hours: 8\n" },
			wantErr: sim.ErrEmptyLine,
		},
		{
			name:    "negative horizon",
			mutate:  func(doc string) string { return strings.Replace(doc, "horizon_hours: 8", "horizon_hours: -1", 1) },
			wantErr: sim.ErrInvalidHorizon,
		},
		{
			name:    "bad mtbf",
			mutate:  func(doc string) string { return strings.Replace(doc, "mtbf_hours: 50", "mtbf_hours: 0", 1) },
			wantErr: sim.ErrInvalidStationSpec,
		},
		{
			name:    "duplicate names",
			mutate:  func(doc string) string { return strings.Replace(doc, "name: Welding", "name: Stamping", 1) },
			wantErr: sim.ErrInvalidStationSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(validYAML)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpecs_PreservesOrderAndFields(t *testing.T) {
	sc, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	specs := sc.Specs()
	if len(specs) != 2 {
		t.Fatalf("len(Specs()) = %d, want 2", len(specs))
	}
	want := sim.StationSpec{
		Name:             "Stamping",
		MeanCycleTimeSec: 30,
		MTBFHours:        50,
		MTTRHours:        0.5,
		ParallelUnits:    1,
	}
	if specs[0] != want {
		t.Errorf("Specs()[0] = %+v, want %+v", specs[0], want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
}

func TestLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sc.Name != "test-line" {
		t.Errorf("Name = %q, want %q", sc.Name, "test-line")
	}
}

func TestExample_IsValid(t *testing.T) {
	if err := Example().Validate(); err != nil {
		t.Errorf("Example().Validate() = %v, want nil", err)
	}
}

func TestWriteExample(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	var out bytes.Buffer

	if err := WriteExample(path, WriteOptions{Out: &out}); err != nil {
		t.Fatalf("WriteExample() error = %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written example error = %v", err)
	}
	if len(sc.Stations) != 4 {
		t.Errorf("example has %d stations, want 4", len(sc.Stations))
	}

	// Second write without --force refuses.
	if err := WriteExample(path, WriteOptions{Out: &out}); err == nil {
		t.Error("WriteExample() overwrote existing file without force")
	}

	// Force overwrites.
	if err := WriteExample(path, WriteOptions{Force: true, Out: &out}); err != nil {
		t.Errorf("WriteExample(force) error = %v", err)
	}
}

func TestWriteExample_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	var out bytes.Buffer

	if err := WriteExample(path, WriteOptions{DryRun: true, Out: &out}); err != nil {
		t.Fatalf("WriteExample(dry run) error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry run created the file")
	}
	if !strings.Contains(out.String(), "would write") {
		t.Errorf("dry run output = %q, want mention of would write", out.String())
	}
}
