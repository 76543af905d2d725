package report

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/khartmann/linesim/internal/sim"
)

func runSummary(t *testing.T) *sim.LineSummary {
	t.Helper()
	stations := []sim.StationSpec{
		{Name: "Winding", MeanCycleTimeSec: 45, MTBFHours: 120, MTTRHours: 1, ParallelUnits: 2},
		{Name: "Assembly", MeanCycleTimeSec: 60, MTBFHours: 90, MTTRHours: 1.5, ParallelUnits: 1},
	}
	e, err := sim.New(stations, 8)
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	s, err := e.Run(context.Background(), 50, 42)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return s
}

func testOptions() Options {
	return Options{
		HistogramBins: 10,
		Percentiles:   []float64{5, 95},
		Parallel:      map[string]int{"Winding": 2, "Assembly": 1},
	}
}

func TestRender_ContainsSections(t *testing.T) {
	out := Render(runSummary(t), testOptions())

	for _, want := range []string{
		"50 trials",
		"Throughput",
		"Throughput distribution",
		"Bottleneck probability",
		"Stations",
		"Winding",
		"Assembly",
		"mean",
		"p5",
		"p95",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRender_ZeroTrials(t *testing.T) {
	stations := []sim.StationSpec{
		{Name: "Solo", MeanCycleTimeSec: 10, MTBFHours: 1, MTTRHours: 1, ParallelUnits: 1},
	}
	e, err := sim.New(stations, 8)
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	s, err := e.Run(context.Background(), 0, 1)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := Render(s, testOptions())
	if !strings.Contains(out, "no trials run") {
		t.Errorf("zero-trial report = %q, want no-trials notice", out)
	}
}

func TestRender_NoHistogramWhenDisabled(t *testing.T) {
	opts := testOptions()
	opts.HistogramBins = 0

	out := Render(runSummary(t), opts)
	if strings.Contains(out, "Throughput distribution") {
		t.Error("histogram rendered with bins disabled")
	}
}

func TestJSON(t *testing.T) {
	data, err := JSON(runSummary(t), testOptions())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var r struct {
		Trials         int            `json:"trials"`
		MeanThroughput float64        `json:"mean_throughput"`
		Percentiles    map[string]int `json:"throughput_percentiles"`
		Throughputs    []int          `json:"throughputs"`
		Stations       []struct {
			Name                  string  `json:"name"`
			BottleneckProbability float64 `json:"bottleneck_probability"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if r.Trials != 50 {
		t.Errorf("trials = %d, want 50", r.Trials)
	}
	if len(r.Throughputs) != 50 {
		t.Errorf("throughputs has %d entries, want 50", len(r.Throughputs))
	}
	if len(r.Stations) != 2 {
		t.Fatalf("stations has %d entries, want 2", len(r.Stations))
	}
	if r.Stations[0].Name != "Winding" || r.Stations[1].Name != "Assembly" {
		t.Errorf("station order = %s, %s; want Winding, Assembly", r.Stations[0].Name, r.Stations[1].Name)
	}
	if _, ok := r.Percentiles["p95"]; !ok {
		t.Error("percentiles missing p95")
	}

	// Tie-inclusive crediting means probabilities can exceed 1 in total,
	// but each must lie in [0, 1].
	for _, st := range r.Stations {
		if st.BottleneckProbability < 0 || st.BottleneckProbability > 1 {
			t.Errorf("station %s probability %f outside [0,1]", st.Name, st.BottleneckProbability)
		}
	}
}
