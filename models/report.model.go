package models

import (
	"gorm.io/gorm"
)

// DailyReport is one progress submission per (user, batch, date).
// Resubmitting for the same triple overwrites the row in place, so
// CreatedAt is the first submission time and UpdatedAt the latest.
type DailyReport struct {
	gorm.Model
	UserID         uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_report_user_batch_date"`
	BatchID        uint    `json:"batch_id" gorm:"not null;uniqueIndex:idx_report_user_batch_date"`
	ReportDate     string  `json:"report_date" gorm:"not null;uniqueIndex:idx_report_user_batch_date"`
	TasksCompleted string  `json:"tasks_completed" gorm:"not null"`
	Challenges     string  `json:"challenges" gorm:"default:''"`
	HoursWorked    float64 `json:"hours_worked" gorm:"not null"`
	Notes          string  `json:"notes" gorm:"default:''"`
	User           User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Batch          Batch   `json:"-" gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}
