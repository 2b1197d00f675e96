package models

import "time"

type User struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	ResetToken        string
	ResetTokenExpires *time.Time

	Applications []Application `gorm:"foreignKey:UserID"`
}
