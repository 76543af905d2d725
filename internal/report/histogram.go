package report

import (
	"fmt"
	"strings"
)

// histogram bar geometry.
const (
	barWidth   = 40
	barRune    = "█"
	barPadRune = " "
)

// Bin is one histogram bucket over the throughput distribution.
type Bin struct {
	Low   int // inclusive
	High  int // inclusive
	Count int
}

// BinValues buckets integer samples into at most bins equal-width bins.
// Fewer bins are returned when the value range is narrower than bins.
func BinValues(values []int, bins int) []Bin {
	if len(values) == 0 || bins < 1 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo + 1
	if bins > span {
		bins = span
	}
	width := span / bins
	if span%bins != 0 {
		width++
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = lo + i*width
		out[i].High = out[i].Low + width - 1
	}
	// The last bin may extend past hi; clamp for display.
	if out[bins-1].High > hi {
		out[bins-1].High = hi
	}

	for _, v := range values {
		idx := (v - lo) / width
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// renderHistogram draws horizontal bars, one line per bin, scaled so the
// fullest bin spans barWidth cells.
func renderHistogram(bins []Bin, total int) string {
	if len(bins) == 0 || total == 0 {
		return ""
	}

	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	var sb strings.Builder
	for _, b := range bins {
		filled := 0
		if maxCount > 0 {
			filled = b.Count * barWidth / maxCount
		}
		if b.Count > 0 && filled == 0 {
			filled = 1
		}

		label := fmt.Sprintf("%d-%d", b.Low, b.High)
		if b.Low == b.High {
			label = fmt.Sprintf("%d", b.Low)
		}

		bar := strings.Repeat(barRune, filled) + strings.Repeat(barPadRune, barWidth-filled)
		pct := float64(b.Count) / float64(total) * 100
		fmt.Fprintf(&sb, "%12s  %s %5.1f%%\n", label, styles.Bar.Render(bar), pct)
	}
	return sb.String()
}
