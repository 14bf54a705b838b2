package models

import "time"

// Course statuses
const (
	CourseActive    = "active"
	CourseInactive  = "inactive"
	CourseCompleted = "completed"
)

// ValidCourseStatus reports whether status is a known course status.
func ValidCourseStatus(status string) bool {
	switch status {
	case CourseActive, CourseInactive, CourseCompleted:
		return true
	}
	return false
}

type Course struct {
	ID            uint      `gorm:"primarykey" json:"courseId"`
	CourseName    string    `gorm:"not null" json:"courseName"`
	CourseCode    string    `gorm:"unique;not null" json:"courseCode"`
	Description   string    `gorm:"type:text" json:"description"`
	InstructorID  *uint     `json:"instructorId"`
	DurationWeeks int       `json:"durationWeeks"`
	Price         float64   `json:"price"`
	MaxStudents   int       `json:"maxStudents"`
	Status        string    `gorm:"default:'active'" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
