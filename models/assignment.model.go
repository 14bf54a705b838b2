package models

import "time"

// Assignment types
const (
	AssignmentHomework = "homework"
	AssignmentQuiz     = "quiz"
	AssignmentProject  = "project"
)

// Assignment statuses
const (
	AssignmentPublished = "published"
	AssignmentDraft     = "draft"
)

// ValidAssignmentType reports whether t is a known assignment type.
func ValidAssignmentType(t string) bool {
	switch t {
	case AssignmentHomework, AssignmentQuiz, AssignmentProject:
		return true
	}
	return false
}

type Assignment struct {
	ID          uint       `gorm:"primarykey" json:"assignmentId"`
	CourseID    uint       `gorm:"not null" json:"courseId"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    int        `gorm:"default:100" json:"maxScore"`
	Type        string     `gorm:"default:'homework'" json:"type"`
	Status      string     `gorm:"default:'published'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
