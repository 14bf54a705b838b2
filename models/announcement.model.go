package models

import "time"

// Announcement priorities
const (
	PriorityNormal    = "normal"
	PriorityImportant = "important"
	PriorityUrgent    = "urgent"
)

// ValidPriority reports whether p is a known announcement priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityNormal, PriorityImportant, PriorityUrgent:
		return true
	}
	return false
}

type Announcement struct {
	ID           uint      `gorm:"primarykey" json:"announcementId"`
	CourseID     uint      `gorm:"not null" json:"courseId"`
	InstructorID uint      `gorm:"not null" json:"instructorId"`
	Title        string    `gorm:"not null" json:"title"`
	Content      string    `gorm:"type:text" json:"content"`
	Priority     string    `gorm:"default:'normal'" json:"priority"`
	CreatedAt    time.Time `json:"createdAt"`

	Course     *Course     `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}
