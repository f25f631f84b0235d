package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FlowLight    = "light"
	FlowModerate = "moderate"
	FlowHeavy    = "heavy"
)

const (
	MinPainLevel = 0
	MaxPainLevel = 10
)

type MenstrualCycle struct {
	ID            uint       `gorm:"primaryKey"`
	PatientID     uint       `gorm:"not null;index"`
	StartDate     time.Time  `gorm:"type:date;not null"`
	EndDate       *time.Time `gorm:"type:date"`
	CycleLength   *int
	FlowIntensity string `gorm:"size:10;not null"`
	PainLevel     int    `gorm:"not null"`
	Notes         string
}

// BeforeSave recomputes the stored cycle length whenever both dates are
// present. A cycle without an end date keeps a null length.
func (cycle *MenstrualCycle) BeforeSave(tx *gorm.DB) error {
	cycle.CycleLength = ComputeCycleLength(cycle.StartDate, cycle.EndDate)
	return nil
}

func ComputeCycleLength(startDate time.Time, endDate *time.Time) *int {
	if endDate == nil || startDate.IsZero() || endDate.IsZero() {
		return nil
	}
	days := int(endDate.Sub(startDate).Hours() / 24)
	return &days
}

func IsValidFlowIntensity(value string) bool {
	switch value {
	case FlowLight, FlowModerate, FlowHeavy:
		return true
	default:
		return false
	}
}
