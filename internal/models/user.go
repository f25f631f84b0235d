package models

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"index"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Phone        string
	Gender       string    `gorm:"size:1"`
	Role         string    `gorm:"not null;default:patient"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (user *User) FullName() string {
	if user.FirstName == "" && user.LastName == "" {
		return user.Username
	}
	if user.FirstName == "" {
		return user.LastName
	}
	if user.LastName == "" {
		return user.FirstName
	}
	return user.FirstName + " " + user.LastName
}
