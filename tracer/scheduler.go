package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the
	// pool of tracers.
	//
	// This function returns the block height assignment for each
	// tracer in the input list.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame based solely on the static speed
// estimate reported by each tracer.
type naiveScheduler struct {
	blockAssignment []uint32
}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return &naiveScheduler{}
}

func (sch *naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	sch.blockAssignment = assignBySpeed(tracers, frameH, sch.blockAssignment)
	return sch.blockAssignment
}

// The perfect scheduler assumes that the volume of tracing work between
// two subsequent frames is approximately the same and uses the render
// times of the previous frame to rebalance block heights.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance.
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split frame into blocks of variable height and assign to the pool of
// tracers using feedback collected from previous frames.
//
// The estimated workload share for tracer w in frame i+1 is
// (blockH,w_i / time,w_i) / Σ(blockH_i / time_i). The first call has no
// feedback to use and falls back to the speed-based split.
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	// If this is the first time we try to schedule or the number of
	// tracers has changed we need to reset the block assignments.
	if len(sch.blockAssignment) != len(tracers) {
		sch.blockAssignment = assignBySpeed(tracers, frameH, nil)
		return sch.blockAssignment
	}

	// Use last frame statistics.
	var total float64
	for _, tr := range tracers {
		total += blockRate(tr.Stats())
	}

	scaler := float64(frameH) / total
	for idx, tr := range tracers {
		sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(blockRate(tr.Stats())*scaler)))
	}
	balanceRows(sch.blockAssignment, frameH)

	return sch.blockAssignment
}

// Adjust block assignments so they add up to exactly frameH rows.
// Missing rows are appended to the first tracer; surplus rows
// introduced by the one-row minimum are trimmed from the largest
// assignments so no assignment can wrap around.
func balanceRows(blockAssignment []uint32, frameH uint32) {
	var scheduledRows uint32
	for _, rows := range blockAssignment {
		scheduledRows += rows
	}

	if scheduledRows < frameH {
		blockAssignment[0] += frameH - scheduledRows
		return
	}

	for scheduledRows > frameH {
		largest := 0
		for idx, rows := range blockAssignment {
			if rows > blockAssignment[largest] {
				largest = idx
			}
		}
		blockAssignment[largest]--
		scheduledRows--
	}
}

// Rows per unit time for the tracer's last block. Clamps the measured
// time to one tick so a sub-resolution render cannot divide by zero.
func blockRate(stats *Stats) float64 {
	renderTime := stats.RenderTime
	if renderTime <= 0 {
		renderTime = 1
	}
	return float64(stats.BlockH) / float64(renderTime)
}

// Distribute frameH rows proportionally to each tracer's speed
// estimate. Every tracer receives at least one row when the frame
// height allows it.
func assignBySpeed(tracers []Tracer, frameH uint32, blockAssignment []uint32) []uint32 {
	if len(blockAssignment) != len(tracers) {
		blockAssignment = make([]uint32, len(tracers))
	}

	var total float64
	for _, tr := range tracers {
		total += float64(tr.Speed())
	}
	scaler := float64(frameH) / total

	for idx, tr := range tracers {
		blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.Speed())*scaler)))
	}
	balanceRows(blockAssignment, frameH)

	return blockAssignment
}
