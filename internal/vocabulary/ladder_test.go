package vocabulary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextSchedule_ConsecutivePasses(t *testing.T) {
	repetition := 0
	var intervals []int
	for i := 0; i < 8; i++ {
		var interval int
		interval, repetition = NextSchedule(repetition, ResultPass)
		intervals = append(intervals, interval)
	}

	assert.Equal(t, []int{1, 3, 7, 14, 30, 60, 60, 60}, intervals)
	assert.Equal(t, 8, repetition)
}

func TestNextSchedule(t *testing.T) {
	tests := []struct {
		name           string
		repetition     int
		result         Result
		wantInterval   int
		wantRepetition int
	}{
		{name: "first pass", repetition: 0, result: ResultPass, wantInterval: 1, wantRepetition: 1},
		{name: "third pass", repetition: 2, result: ResultPass, wantInterval: 7, wantRepetition: 3},
		{name: "pass after saturation", repetition: 20, result: ResultPass, wantInterval: 60, wantRepetition: 21},
		{name: "fail on a fresh term", repetition: 0, result: ResultFail, wantInterval: 1, wantRepetition: 0},
		{name: "fail resets a long streak", repetition: 6, result: ResultFail, wantInterval: 1, wantRepetition: 0},
		{name: "negative repetition is treated as fresh", repetition: -3, result: ResultPass, wantInterval: 1, wantRepetition: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, repetition := NextSchedule(tt.repetition, tt.result)
			assert.Equal(t, tt.wantInterval, interval)
			assert.Equal(t, tt.wantRepetition, repetition)
		})
	}
}

func TestNextReviewAt(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	tests := []struct {
		name         string
		now          time.Time
		intervalDays int
		want         time.Time
	}{
		{
			name:         "crosses a month boundary",
			now:          time.Date(2025, 1, 30, 9, 15, 0, 0, time.UTC),
			intervalDays: 3,
			want:         time.Date(2025, 2, 2, 9, 15, 0, 0, time.UTC),
		},
		{
			name:         "crosses a leap day",
			now:          time.Date(2024, 2, 27, 12, 0, 0, 0, time.UTC),
			intervalDays: 3,
			want:         time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:         "keeps wall clock time across a DST change",
			now:          time.Date(2025, 3, 8, 10, 0, 0, 0, newYork),
			intervalDays: 1,
			want:         time.Date(2025, 3, 9, 10, 0, 0, 0, newYork),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReviewAt(tt.now, tt.intervalDays)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
