package sim

import "math/rand"

const secondsPerHour = 3600.0

// SimulateStation produces one realization of a station's behavior over
// [0, horizonSec]: for each parallel machine it alternates exponential up
// and down intervals until the horizon is exhausted, and sums busy time,
// downtime, and completed units across machines.
//
// Each machine is assumed to always have work and never be blocked
// downstream, so the result is a capacity estimate, not a flow estimate.
// The caller owns rng; draws advance its state.
func SimulateStation(spec StationSpec, horizonSec float64, rng *rand.Rand) StationTrialResult {
	result := StationTrialResult{Name: spec.Name}

	mtbfSec := spec.MTBFHours * secondsPerHour
	mttrSec := spec.MTTRHours * secondsPerHour

	for machine := 0; machine < spec.ParallelUnits; machine++ {
		t := 0.0

		for t < horizonSec {
			// Up interval, truncated at the horizon. A truncated interval
			// means the machine is still up when the shift ends; no failure
			// is recorded for it.
			upSec := rng.ExpFloat64() * mtbfSec
			if t+upSec > horizonSec {
				upSec = horizonSec - t
			}

			if spec.MeanCycleTimeSec > 0 {
				units := int(upSec / spec.MeanCycleTimeSec)
				result.Units += units
				result.BusyTimeSec += float64(units) * spec.MeanCycleTimeSec
			}
			t += upSec

			if t >= horizonSec {
				break
			}

			// Failure: repair interval, also truncated at the horizon.
			repairSec := rng.ExpFloat64() * mttrSec
			if t+repairSec > horizonSec {
				repairSec = horizonSec - t
			}
			result.DowntimeSec += repairSec
			t += repairSec
		}
	}

	return result
}
