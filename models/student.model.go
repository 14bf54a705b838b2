package models

import "time"

type Student struct {
	ID             uint       `gorm:"primarykey" json:"studentId"`
	FullName       string     `gorm:"not null" json:"fullName"`
	Email          string     `gorm:"unique;not null" json:"email"`
	Phone          string     `json:"phone"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	Address        string     `json:"address"`
	EnrollmentDate *time.Time `json:"enrollmentDate"`
	CreatedAt      time.Time  `json:"createdAt"`
}
