package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputePeriodStatus(t *testing.T) {
	start := day("2026-09-01")
	end := day("2026-09-15")

	tests := []struct {
		name  string
		today time.Time
		want  string
	}{
		{"day before start", day("2026-08-31"), PeriodUpcoming},
		{"start date", day("2026-09-01"), PeriodActive},
		{"mid period", day("2026-09-08"), PeriodActive},
		{"end date", day("2026-09-15"), PeriodActive},
		{"day after end", day("2026-09-16"), PeriodClosed},
		{"far future", day("2027-01-01"), PeriodClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePeriodStatus(start, end, tt.today))
		})
	}
}

func TestComputePeriodStatusIgnoresTimeOfDay(t *testing.T) {
	start := day("2026-09-01")
	end := day("2026-09-15")

	lateOnEndDate := time.Date(2026, 9, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, PeriodActive, ComputePeriodStatus(start, end, lateOnEndDate))

	earlyOnStartDate := time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, PeriodActive, ComputePeriodStatus(start, end, earlyOnStartDate))
}

func TestComputePeriodStatusJanuaryWindow(t *testing.T) {
	start := day("2024-01-01")
	end := day("2024-01-31")

	assert.Equal(t, PeriodUpcoming, ComputePeriodStatus(start, end, day("2023-12-01")))
	assert.Equal(t, PeriodActive, ComputePeriodStatus(start, end, day("2024-01-15")))
	assert.Equal(t, PeriodClosed, ComputePeriodStatus(start, end, day("2024-02-01")))
}

func TestComputePeriodStatusSingleDayPeriod(t *testing.T) {
	single := day("2026-10-01")

	assert.Equal(t, PeriodUpcoming, ComputePeriodStatus(single, single, day("2026-09-30")))
	assert.Equal(t, PeriodActive, ComputePeriodStatus(single, single, day("2026-10-01")))
	assert.Equal(t, PeriodClosed, ComputePeriodStatus(single, single, day("2026-10-02")))
}
