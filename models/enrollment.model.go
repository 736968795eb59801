package models

import (
	"gorm.io/gorm"
)

// Enrollment links a user to a batch. At most one row per (user, batch);
// the composite unique index is the storage-level backstop for the
// capacity-guarded enroll transaction.
type Enrollment struct {
	gorm.Model
	UserID  uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_batch"`
	BatchID uint  `json:"batch_id" gorm:"not null;uniqueIndex:idx_enrollment_user_batch"`
	User    User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Batch   Batch `json:"-" gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}
