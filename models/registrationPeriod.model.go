package models

import "time"

// Registration period statuses, derived from the period's date range.
const (
	PeriodUpcoming = "upcoming"
	PeriodActive   = "active"
	PeriodClosed   = "closed"
)

type RegistrationPeriod struct {
	ID          uint      `gorm:"primarykey" json:"periodId"`
	PeriodName  string    `gorm:"not null" json:"periodName"`
	Description string    `json:"description"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Status      string    `gorm:"default:'upcoming'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PeriodCourse links a registration period to a course open for enrollment
// during that period.
type PeriodCourse struct {
	ID       uint `gorm:"primarykey" json:"id"`
	PeriodID uint `gorm:"not null;uniqueIndex:idx_period_course" json:"periodId"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_period_course" json:"courseId"`
}

// ComputePeriodStatus derives a period's status from its date range. Both
// bounds are inclusive: a period is active on its start and end dates.
func ComputePeriodStatus(startDate, endDate, today time.Time) string {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	day := truncateToDay(today)

	if day.Before(start) {
		return PeriodUpcoming
	}
	if day.After(end) {
		return PeriodClosed
	}
	return PeriodActive
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
