package analyzer

const (
	// beatHistory frames at ~60 Hz gives roughly 0.7s of bass energy context.
	beatHistory = 43
	// beatRefractory frames (~0.18s) suppress double triggers on one kick.
	beatRefractory = 11
	// beatRatio is how far above average bass energy counts as a beat.
	beatRatio = 1.5
	// beatFloor rejects triggers in near-silence.
	beatFloor = 0.05
)

// beatDetector flags frames whose low-band energy spikes above the recent
// average. Zero value is ready to use.
type beatDetector struct {
	history [beatHistory]float64
	pos     int
	filled  int
	cooloff int
}

func (d *beatDetector) update(bassEnergy float64) bool {
	avg := 0.0
	if d.filled > 0 {
		for i := 0; i < d.filled; i++ {
			avg += d.history[i]
		}
		avg /= float64(d.filled)
	}

	d.history[d.pos] = bassEnergy
	d.pos = (d.pos + 1) % beatHistory
	if d.filled < beatHistory {
		d.filled++
	}

	if d.cooloff > 0 {
		d.cooloff--
		return false
	}
	if d.filled < beatHistory/4 {
		return false
	}
	if bassEnergy > beatFloor && bassEnergy > avg*beatRatio {
		d.cooloff = beatRefractory
		return true
	}
	return false
}
