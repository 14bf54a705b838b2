package models

import "time"

// Submission statuses
const (
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
	SubmissionLate      = "late"
)

type Submission struct {
	ID            uint       `gorm:"primarykey" json:"submissionId"`
	AssignmentID  uint       `gorm:"not null;uniqueIndex:idx_assignment_student" json:"assignmentId"`
	StudentID     uint       `gorm:"not null;uniqueIndex:idx_assignment_student" json:"studentId"`
	Content       string     `gorm:"type:text" json:"content"`
	Attachment    string     `json:"attachment"`
	Score         *int       `json:"score"`
	Status        string     `gorm:"default:'submitted'" json:"status"`
	SubmittedDate *time.Time `json:"submittedDate"`
	CreatedAt     time.Time  `json:"createdAt"`

	Assignment *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student    *Student    `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
