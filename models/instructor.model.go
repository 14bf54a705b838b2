package models

import "time"

type Instructor struct {
	ID             uint      `gorm:"primarykey" json:"instructorId"`
	FullName       string    `gorm:"not null" json:"fullName"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Phone          string    `json:"phone"`
	Specialization string    `json:"specialization"`
	Bio            string    `gorm:"type:text" json:"bio"`
	CreatedAt      time.Time `json:"createdAt"`
}
