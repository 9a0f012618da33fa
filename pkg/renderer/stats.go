package renderer

import "time"

// WorkerStats records the work done by a single worker
type WorkerStats struct {
	ID         int
	Rows       int
	Samples    int
	RenderTime time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Workers      []WorkerStats
	TotalRows    int
	TotalSamples int
	RenderTime   time.Duration // Wall time for the whole frame
}

// addWorker folds a worker's counters into the totals
func (rs *RenderStats) addWorker(ws WorkerStats) {
	rs.Workers = append(rs.Workers, ws)
	rs.TotalRows += ws.Rows
	rs.TotalSamples += ws.Samples
}

// SamplesPerSecond returns the overall sampling throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.RenderTime <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.RenderTime.Seconds()
}
