package models

import "time"

// Enrollment completion statuses
const (
	CompletionEnrolled   = "enrolled"
	CompletionInProgress = "in_progress"
	CompletionCompleted  = "completed"
	CompletionDropped    = "dropped"
)

// Enrollment payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// ValidCompletionStatus reports whether status is a known completion status.
func ValidCompletionStatus(status string) bool {
	switch status {
	case CompletionEnrolled, CompletionInProgress, CompletionCompleted, CompletionDropped:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether status is a known payment status.
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Enrollment struct {
	ID               uint       `gorm:"primarykey" json:"enrollmentId"`
	StudentID        uint       `gorm:"not null;uniqueIndex:idx_student_course" json:"studentId"`
	CourseID         uint       `gorm:"not null;uniqueIndex:idx_student_course" json:"courseId"`
	EnrollmentDate   *time.Time `json:"enrollmentDate"`
	CompletionStatus string     `gorm:"default:'enrolled'" json:"completionStatus"`
	Grade            *float64   `json:"grade"`
	PaymentStatus    string     `gorm:"default:'pending'" json:"paymentStatus"`
	CreatedAt        time.Time  `json:"createdAt"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
