package util

import "os-scheduling-simulator/internal/core"

func CalculateAverage(rows []core.MetricsRow) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(rows) == 0 {
		return
	}

	var waitingTimeSum int
	var turnAroundTimeSum int
	for _, row := range rows {
		waitingTimeSum += row.Waiting
		turnAroundTimeSum += row.Turnaround
	}

	proccessCount := float64(len(rows))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}

// Mean returns the arithmetic mean of values, 0 when there are none.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
