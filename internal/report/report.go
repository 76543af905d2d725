// Package report renders a finished Monte Carlo run for the terminal, as
// styled text or JSON. It is a pure consumer of sim.LineSummary; nothing
// here feeds back into the simulation.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/khartmann/linesim/internal/sim"
)

// styles used by the text report.
var styles = struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Station lipgloss.Style
	Value   lipgloss.Style
	Bar     lipgloss.Style
	Dim     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	Station: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")),

	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}

// Options controls report rendering.
type Options struct {
	// HistogramBins is the maximum bucket count for the throughput
	// histogram. Values < 1 disable the histogram.
	HistogramBins int

	// Percentiles lists extra percentiles (0-100) to report alongside the
	// mean.
	Percentiles []float64

	// Parallel maps station name to machine count, used for utilization.
	// Stations missing from the map are reported without utilization.
	Parallel map[string]int
}

// Render produces the full text report for a summary.
func Render(s *sim.LineSummary, opts Options) string {
	var sb strings.Builder

	fmt.Fprintln(&sb, styles.Title.Render(fmt.Sprintf("Line simulation: %d trials over %.1fh horizon", s.Trials, s.HorizonHours)))
	sb.WriteString("\n")

	if s.Trials == 0 {
		fmt.Fprintln(&sb, styles.Dim.Render("no trials run"))
		return sb.String()
	}

	fmt.Fprintln(&sb, styles.Section.Render("Throughput"))
	fmt.Fprintf(&sb, "  mean   %s units\n", styles.Value.Render(fmt.Sprintf("%.1f", s.MeanThroughput())))
	for _, p := range opts.Percentiles {
		fmt.Fprintf(&sb, "  p%-5.4g %s units\n", p, styles.Value.Render(fmt.Sprintf("%d", s.ThroughputPercentile(p))))
	}
	sb.WriteString("\n")

	if bins := BinValues(s.Throughputs, opts.HistogramBins); len(bins) > 0 {
		fmt.Fprintln(&sb, styles.Section.Render("Throughput distribution"))
		sb.WriteString(renderHistogram(bins, s.Trials))
		sb.WriteString("\n")
	}

	fmt.Fprintln(&sb, styles.Section.Render("Bottleneck probability"))
	sb.WriteString(renderBottlenecks(s))
	sb.WriteString("\n")

	fmt.Fprintln(&sb, styles.Section.Render("Stations"))
	sb.WriteString(renderStationTable(s, opts.Parallel))

	return sb.String()
}

// renderBottlenecks draws one probability bar per station in line order.
func renderBottlenecks(s *sim.LineSummary) string {
	var sb strings.Builder
	for _, name := range s.Stations {
		p := s.BottleneckProbability(name)
		filled := int(p * barWidth)
		bar := strings.Repeat(barRune, filled) + strings.Repeat(barPadRune, barWidth-filled)
		fmt.Fprintf(&sb, "  %-20s %s %5.1f%%\n",
			styles.Station.Render(name), styles.Bar.Render(bar), p*100)
	}
	return sb.String()
}

// renderStationTable prints per-station averages in line order.
func renderStationTable(s *sim.LineSummary, parallel map[string]int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-20s %10s %10s %10s %6s\n",
		"", "units/run", "busy [h]", "down [h]", "util")
	for _, name := range s.Stations {
		util := "-"
		if n, ok := parallel[name]; ok && n > 0 {
			util = fmt.Sprintf("%5.1f%%", s.Utilization(name, n)*100)
		}
		fmt.Fprintf(&sb, "  %-20s %10.1f %10.2f %10.2f %6s\n",
			styles.Station.Render(name),
			s.MeanUnits(name),
			s.MeanBusyHours(name),
			s.MeanDowntimeHours(name),
			util)
	}
	return sb.String()
}

// jsonStation is the per-station block of the JSON report.
type jsonStation struct {
	Name                  string  `json:"name"`
	BottleneckCount       int     `json:"bottleneck_count"`
	BottleneckProbability float64 `json:"bottleneck_probability"`
	MeanUnits             float64 `json:"mean_units"`
	MeanBusyHours         float64 `json:"mean_busy_hours"`
	MeanDowntimeHours     float64 `json:"mean_downtime_hours"`
	Utilization           float64 `json:"utilization,omitempty"`
}

// jsonReport is the machine-readable report for --json.
type jsonReport struct {
	Trials         int            `json:"trials"`
	HorizonHours   float64        `json:"horizon_hours"`
	MeanThroughput float64        `json:"mean_throughput"`
	Percentiles    map[string]int `json:"throughput_percentiles,omitempty"`
	Throughputs    []int          `json:"throughputs"`
	Stations       []jsonStation  `json:"stations"`
}

// JSON renders the summary and its derived statistics as indented JSON.
func JSON(s *sim.LineSummary, opts Options) ([]byte, error) {
	r := jsonReport{
		Trials:         s.Trials,
		HorizonHours:   s.HorizonHours,
		MeanThroughput: s.MeanThroughput(),
		Throughputs:    s.Throughputs,
	}
	if len(opts.Percentiles) > 0 && s.Trials > 0 {
		r.Percentiles = make(map[string]int, len(opts.Percentiles))
		for _, p := range opts.Percentiles {
			r.Percentiles[fmt.Sprintf("p%g", p)] = s.ThroughputPercentile(p)
		}
	}
	for _, name := range s.Stations {
		st := jsonStation{
			Name:                  name,
			BottleneckCount:       s.BottleneckCounts[name],
			BottleneckProbability: s.BottleneckProbability(name),
			MeanUnits:             s.MeanUnits(name),
			MeanBusyHours:         s.MeanBusyHours(name),
			MeanDowntimeHours:     s.MeanDowntimeHours(name),
		}
		if n, ok := opts.Parallel[name]; ok {
			st.Utilization = s.Utilization(name, n)
		}
		r.Stations = append(r.Stations, st)
	}
	return json.MarshalIndent(r, "", "  ")
}
