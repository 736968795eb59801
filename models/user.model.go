package models

import (
	"gorm.io/gorm"
)

// Roles assignable to a user. Admin accounts exist only via seeding; the
// register endpoint accepts student and teacher.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name" gorm:"default:''"`
	Role     string `json:"role" gorm:"default:'student'"`
}
