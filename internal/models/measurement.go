package models

import (
	"encoding/json"
	"time"
)

const (
	BleedingLight    = "light"
	BleedingModerate = "moderate"
	BleedingHeavy    = "heavy"
)

type BPCategory string

const (
	BPNormal   BPCategory = "Normal"
	BPElevated BPCategory = "Elevated"
	BPStage1   BPCategory = "Stage 1 Hypertension"
	BPStage2   BPCategory = "Stage 2 Hypertension"
)

type Measurement struct {
	ID                uint      `gorm:"primaryKey"`
	PatientID         uint      `gorm:"not null;index"`
	Timestamp         time.Time `gorm:"not null;index"`
	HeartRate         *float64
	SpO2              *float64 `gorm:"column:spo2"`
	Temperature       *float64
	SystolicBP        *int
	DiastolicBP       *int
	MenstrualPain     *int
	BleedingIntensity *string         `gorm:"size:10"`
	DeviceID          *string         `gorm:"size:128"`
	RawPPG            json.RawMessage `gorm:"serializer:json"`
	Note              *string
}

// ClassifyBloodPressure maps a systolic/diastolic pair to its clinical
// category. The branch order matters: a systolic at or above 140 paired
// with a diastolic below 80 still lands in stage 1 through the OR branch.
func ClassifyBloodPressure(systolic int, diastolic int) BPCategory {
	if systolic < 120 && diastolic < 80 {
		return BPNormal
	}
	if systolic < 130 && diastolic < 80 {
		return BPElevated
	}
	if (130 <= systolic && systolic < 140) || (80 <= diastolic && diastolic < 90) {
		return BPStage1
	}
	return BPStage2
}

// BPCategory returns nil unless both pressure fields are present and
// non-zero, mirroring how readings with a missing half are skipped.
func (measurement *Measurement) BPCategory() *BPCategory {
	if !measurement.HasBloodPressure() {
		return nil
	}
	category := ClassifyBloodPressure(*measurement.SystolicBP, *measurement.DiastolicBP)
	return &category
}

func (measurement *Measurement) HasBloodPressure() bool {
	return measurement.SystolicBP != nil && *measurement.SystolicBP != 0 &&
		measurement.DiastolicBP != nil && *measurement.DiastolicBP != 0
}

func IsValidBleedingIntensity(value string) bool {
	switch value {
	case BleedingLight, BleedingModerate, BleedingHeavy:
		return true
	default:
		return false
	}
}
