package vocabulary

import "time"

const (
	initialIntervalDays = 1
	initialRepetition   = 0
)

// reviewIntervals is indexed by repetition-1 and saturates at the last value.
var reviewIntervals = []int{1, 3, 7, 14, 30, 60}

// NextSchedule applies a review result to the current repetition count.
// A pass advances along reviewIntervals; a fail resets to the first interval.
func NextSchedule(repetition int, result Result) (intervalDays int, nextRepetition int) {
	if result != ResultPass {
		return initialIntervalDays, initialRepetition
	}
	nextRepetition = max(repetition, 0) + 1
	return reviewIntervals[min(nextRepetition-1, len(reviewIntervals)-1)], nextRepetition
}

// NextReviewAt adds intervalDays calendar days to now, keeping the wall clock time.
func NextReviewAt(now time.Time, intervalDays int) time.Time {
	return now.AddDate(0, 0, intervalDays)
}
