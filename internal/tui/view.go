package tui

import (
	"fmt"
	"strings"

	"github.com/khartmann/linesim/internal/report"
)

const (
	histogramBins = 10
	barCells      = 30
)

// View implements tea.Model.
func (m model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderProgress())

	if len(m.throughputs) > 0 {
		sections = append(sections, m.renderHistogram())
		sections = append(sections, m.renderBottlenecks())
	}

	if m.lastError != "" {
		sections = append(sections, styles.Error.Render("error: "+m.lastError))
	}

	sections = append(sections, m.renderFooter())

	return styles.Container.Render(strings.Join(sections, "\n\n"))
}

func (m model) renderHeader() string {
	title := "linesim"
	if m.scenario != "" {
		title = fmt.Sprintf("linesim: %s (%.1fh horizon, seed %d)", m.scenario, m.horizonHours, m.seed)
	}
	return styles.Title.Render(title)
}

func (m model) renderProgress() string {
	switch m.phase {
	case phaseWaiting:
		return m.spinner.View() + " waiting for run to start"
	case phaseRunning:
		pct := 0.0
		if m.trials > 0 {
			pct = float64(m.completed) / float64(m.trials) * 100
		}
		return fmt.Sprintf("%s %s",
			m.spinner.View(),
			styles.Progress.Render(fmt.Sprintf("trial %d/%d (%.0f%%)", m.completed, m.trials, pct)))
	case phaseCanceled:
		return styles.Canceled.Render(fmt.Sprintf("canceled after %d/%d trials", m.completed, m.trials))
	default:
		return styles.Done.Render(fmt.Sprintf("done: %d trials, mean throughput %.1f units (%.1fs)",
			m.completed, m.mean, float64(m.durationMs)/1000))
	}
}

func (m model) renderHistogram() string {
	bins := report.BinValues(m.throughputs, histogramBins)
	if len(bins) == 0 {
		return ""
	}

	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	var sb strings.Builder
	sb.WriteString(styles.Section.Render("Throughput") + "\n")
	for _, b := range bins {
		filled := 0
		if maxCount > 0 {
			filled = b.Count * barCells / maxCount
		}
		if b.Count > 0 && filled == 0 {
			filled = 1
		}
		label := fmt.Sprintf("%d-%d", b.Low, b.High)
		if b.Low == b.High {
			label = fmt.Sprintf("%d", b.Low)
		}
		bar := strings.Repeat("█", filled)
		fmt.Fprintf(&sb, "%10s %s %d\n", label, styles.Bar.Render(bar), b.Count)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m model) renderBottlenecks() string {
	var sb strings.Builder
	sb.WriteString(styles.Section.Render("Bottlenecks") + "\n")
	for _, name := range m.stations {
		count := m.bottlenecks[name]
		pct := 0.0
		if m.completed > 0 {
			pct = float64(count) / float64(m.completed) * 100
		}
		filled := int(pct / 100 * barCells)
		bar := strings.Repeat("█", filled)
		fmt.Fprintf(&sb, "%-20s %s %5.1f%%\n", styles.Station.Render(name), styles.Bar.Render(bar), pct)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m model) renderFooter() string {
	if m.phase == phaseRunning || m.phase == phaseWaiting {
		return styles.Footer.Render("q: cancel and quit")
	}
	return styles.Footer.Render("q: quit")
}
