package models

import (
	"gorm.io/datatypes"
)

// Job is an open position. Jobs are seeded administratively and read-only to
// applicants; deactivation (is_active=false) hides a job instead of deleting
// it so existing applications keep their reference.
type Job struct {
	BaseModel
	Title            string         `gorm:"not null"`
	Department       string
	Level            string
	Type             string
	Location         string
	Description      string         `gorm:"type:text"`
	Responsibilities datatypes.JSON `gorm:"type:jsonb"`
	Requirements     datatypes.JSON `gorm:"type:jsonb"`
	IsActive         bool           `gorm:"default:true"`
}
