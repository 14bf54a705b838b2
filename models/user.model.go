package models

import (
	"time"
)

// User roles
const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
	RoleStudent    = "STUDENT"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID          uint       `gorm:"primarykey" json:"userId"`
	Username    string     `gorm:"unique;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	Email       string     `gorm:"unique;not null" json:"email"`
	Role        string     `gorm:"default:'STUDENT'" json:"role"`
	ReferenceID uint       `gorm:"default:0" json:"referenceId"` // Student or Instructor row, 0 for admins
	LastLogin   *time.Time `json:"lastLogin"`
	CreatedAt   time.Time  `json:"createdAt"`
}
