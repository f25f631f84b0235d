package models

import "time"

// ToolTip is an auto-generated advisory tied to a submitted symptom or a
// recorded menstrual cycle. It is not a diagnosis.
type ToolTip struct {
	ID        uint  `gorm:"primaryKey"`
	PatientID uint  `gorm:"not null;index"`
	SymptomID *uint `gorm:"index"`
	Message   string
	CreatedAt time.Time `gorm:"not null"`
}
