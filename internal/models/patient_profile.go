package models

import "time"

type PatientProfile struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"not null;uniqueIndex"`
	User              User
	DOB               *time.Time `gorm:"type:date"`
	Gender            string     `gorm:"size:1;not null"`
	AssignedDoctorID  *uint      `gorm:"index"`
	LastMenstrualDate *time.Time `gorm:"type:date"`
	HasFibroidHistory bool       `gorm:"not null;default:false"`
}

// AgeAt reports the patient's age in whole years at the given date.
// The second return is false when no date of birth is recorded.
func (profile *PatientProfile) AgeAt(today time.Time) (int, bool) {
	if profile.DOB == nil || profile.DOB.IsZero() {
		return 0, false
	}
	days := int(today.Sub(*profile.DOB).Hours() / 24)
	if days < 0 {
		return 0, true
	}
	return days / 365, true
}

func (profile *PatientProfile) IsFemale() bool {
	return profile.Gender == GenderFemale
}
