package models

import (
	"gorm.io/gorm"
)

// Batch statuses. Free-form lifecycle: the creator sets status, no
// transition rules are enforced.
const (
	BatchStatusActive    = "active"
	BatchStatusUpcoming  = "upcoming"
	BatchStatusCompleted = "completed"
)

type Batch struct {
	gorm.Model
	Name            string `json:"name" gorm:"not null"`
	InstructorID    uint   `json:"instructor_id" gorm:"index"`
	Duration        string `json:"duration" gorm:"default:''"`
	StartDate       string `json:"start_date" gorm:"default:''"`
	Status          string `json:"status" gorm:"default:'upcoming'"`
	MaxParticipants int    `json:"max_participants" gorm:"default:100"`
}
