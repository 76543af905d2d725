package sim

import (
	"math"
	"sort"
)

// Derived statistics over a LineSummary. All methods are safe on a
// zero-trial summary and return 0 rather than dividing by zero.

// MeanThroughput returns the average per-trial line throughput.
func (s *LineSummary) MeanThroughput() float64 {
	if len(s.Throughputs) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s.Throughputs {
		sum += v
	}
	return float64(sum) / float64(len(s.Throughputs))
}

// ThroughputPercentile returns the p-th percentile (0-100) of the per-trial
// throughput distribution, using nearest-rank on the sorted values.
func (s *LineSummary) ThroughputPercentile(p float64) int {
	if len(s.Throughputs) == 0 {
		return 0
	}
	sorted := append([]int(nil), s.Throughputs...)
	sort.Ints(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// BottleneckProbability returns the fraction of trials in which the named
// station was tied for minimum units produced.
func (s *LineSummary) BottleneckProbability(name string) float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.BottleneckCounts[name]) / float64(s.Trials)
}

// MeanBusyHours returns the average busy time per trial for a station.
func (s *LineSummary) MeanBusyHours(name string) float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.BusyTimeSec[name] / float64(s.Trials) / secondsPerHour
}

// MeanDowntimeHours returns the average downtime per trial for a station.
func (s *LineSummary) MeanDowntimeHours(name string) float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.DowntimeSec[name] / float64(s.Trials) / secondsPerHour
}

// MeanUnits returns the average units produced per trial for a station.
func (s *LineSummary) MeanUnits(name string) float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Units[name]) / float64(s.Trials)
}

// Utilization returns the fraction of total machine time a station spent
// completing cycles, averaged over all trials. parallel is the station's
// machine count; a zero horizon or zero trials yields 0.
func (s *LineSummary) Utilization(name string, parallel int) float64 {
	if s.Trials == 0 || s.HorizonHours <= 0 || parallel < 1 {
		return 0
	}
	capacitySec := s.HorizonHours * secondsPerHour * float64(parallel) * float64(s.Trials)
	return s.BusyTimeSec[name] / capacitySec
}
