package core

// CpuMetric is the busy/idle accounting of a single simulated CPU.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu accounts a timeline. Idle time covers both explicit IDLE events
// and gaps the policy skipped without recording one.
func MeasureCpu(timeline Timeline) CpuMetric {
	var metric CpuMetric
	if len(timeline) == 0 {
		return metric
	}

	for _, event := range timeline {
		if !event.Idle() {
			metric.UtilizationTime += event.Duration()
		}
	}
	metric.TotalTime = timeline.End() - timeline.Start()
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy share of the total time, in [0, 1].
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per unit of simulated time.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
