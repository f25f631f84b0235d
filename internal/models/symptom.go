package models

import "time"

const (
	SymptomFever             = "fever"
	SymptomHeadache          = "headache"
	SymptomFatigue           = "fatigue"
	SymptomHeavyBleeding     = "heavy_bleeding"
	SymptomPelvicPain        = "pelvic_pain"
	SymptomFrequentUrination = "frequent_urination"
	SymptomBloating          = "bloating"
	SymptomAnemiaSymptoms    = "anemia_symptoms"
	SymptomDizziness         = "dizziness"
	SymptomIrregularPeriods  = "irregular_periods"
	SymptomChestPain         = "chest_pain"
	SymptomVisionChanges     = "vision_changes"

	// Legacy types still produced by older clients. They are not part of
	// the persisted choice list but the recommendation rules handle them.
	// TODO: reconcile with the persisted list once product decides which
	// side wins.
	SymptomCough             = "cough"
	SymptomNausea            = "nausea"
	SymptomShortnessOfBreath = "shortness_of_breath"
)

type Symptom struct {
	ID          uint      `gorm:"primaryKey"`
	PatientID   uint      `gorm:"not null;index"`
	SymptomType string    `gorm:"size:50;not null"`
	Severity    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

var persistedSymptomTypes = map[string]string{
	SymptomFever:             "Fever",
	SymptomHeadache:          "Headache",
	SymptomFatigue:           "Fatigue",
	SymptomHeavyBleeding:     "Heavy Menstrual Bleeding",
	SymptomPelvicPain:        "Pelvic Pain",
	SymptomFrequentUrination: "Frequent Urination",
	SymptomBloating:          "Abdominal Bloating",
	SymptomAnemiaSymptoms:    "Anemia Symptoms",
	SymptomDizziness:         "Dizziness",
	SymptomIrregularPeriods:  "Irregular Periods",
	SymptomChestPain:         "Chest Pain",
	SymptomVisionChanges:     "Vision Changes",
}

func IsPersistedSymptomType(symptomType string) bool {
	_, ok := persistedSymptomTypes[symptomType]
	return ok
}

// SymptomTypeDisplay returns the human-readable label for a persisted
// symptom type, falling back to the raw value for legacy types.
func SymptomTypeDisplay(symptomType string) string {
	if display, ok := persistedSymptomTypes[symptomType]; ok {
		return display
	}
	return symptomType
}
