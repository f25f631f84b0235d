package services

import "github.com/arikhalder/medwatch/internal/models"

// Vital thresholds deliberately differ by audience. Device pushes trigger
// immediate advice, the patient dashboard nudges on a softer band, and the
// doctor roster condenses everything into a condition label. Do not unify.

const (
	DoctorConditionStable     = "Stable"
	DoctorConditionLowSpO2    = "Low SpO₂"
	DoctorConditionAbnormalHR = "Abnormal HR"
	DoctorConditionSevereHTN  = "Severe HTN"
	DoctorConditionStage1HTN  = "Stage 1 HTN"
)

const (
	MsgIngestLowSpO2        = "Low SpO₂ detected — seek medical attention."
	MsgIngestBorderlineSpO2 = "Borderline SpO₂ — rest and re-check."
	MsgIngestHighHeartRate  = "High heart rate — rest and consult doctor if persists."
	MsgIngestLowHeartRate   = "Low heart rate — seek medical advice."
	MsgBPStage2Alert        = "HIGH BLOOD PRESSURE ALERT: Seek immediate medical attention."
	MsgBPStage1Advice       = "Blood pressure elevated - schedule doctor consultation."
	MsgPatientRecheckSpO2   = "Re-check SpO₂ in 30 mins; rest."
	MsgPatientUnusualHR     = "Unusual heart rate — contact your doctor if persistent."
)

// IngestionRecommendations evaluates a freshly stored measurement with the
// device-facing thresholds. Order is fixed: SpO₂, then heart rate, then
// blood pressure.
func IngestionRecommendations(measurement *models.Measurement) []string {
	recommendations := make([]string, 0, 3)
	if measurement == nil {
		return recommendations
	}

	if measurement.SpO2 != nil {
		spo2 := *measurement.SpO2
		if spo2 < 92 {
			recommendations = append(recommendations, MsgIngestLowSpO2)
		} else if spo2 < 95 {
			recommendations = append(recommendations, MsgIngestBorderlineSpO2)
		}
	}

	if measurement.HeartRate != nil {
		heartRate := *measurement.HeartRate
		if heartRate > 120 {
			recommendations = append(recommendations, MsgIngestHighHeartRate)
		} else if heartRate < 45 {
			recommendations = append(recommendations, MsgIngestLowHeartRate)
		}
	}

	recommendations = append(recommendations, bloodPressureRecommendations(measurement)...)
	return recommendations
}

// PatientVitalsRecommendations evaluates the latest measurement with the
// patient-dashboard thresholds.
func PatientVitalsRecommendations(latest *models.Measurement) []string {
	recommendations := make([]string, 0, 3)
	if latest == nil {
		return recommendations
	}

	if latest.SpO2 != nil && *latest.SpO2 < 95 {
		recommendations = append(recommendations, MsgPatientRecheckSpO2)
	}
	if latest.HeartRate != nil && (*latest.HeartRate > 100 || *latest.HeartRate < 50) {
		recommendations = append(recommendations, MsgPatientUnusualHR)
	}

	recommendations = append(recommendations, bloodPressureRecommendations(latest)...)
	return recommendations
}

func bloodPressureRecommendations(measurement *models.Measurement) []string {
	category := measurement.BPCategory()
	if category == nil {
		return nil
	}
	switch *category {
	case models.BPStage2:
		return []string{MsgBPStage2Alert}
	case models.BPStage1:
		return []string{MsgBPStage1Advice}
	default:
		return nil
	}
}

// DoctorVitalsAssessment condenses the latest measurement into a roster
// condition label plus an accumulating alert list. The SpO₂ and heart-rate
// branches are exclusive of each other, but the blood-pressure check runs
// afterwards and overwrites whichever condition they set.
func DoctorVitalsAssessment(latest *models.Measurement) (string, []string) {
	condition := DoctorConditionStable
	alerts := make([]string, 0, 2)
	if latest == nil {
		return condition, alerts
	}

	if latest.SpO2 != nil && *latest.SpO2 != 0 && *latest.SpO2 < 94 {
		condition = DoctorConditionLowSpO2
		alerts = append(alerts, "Low oxygen saturation")
	} else if latest.HeartRate != nil && *latest.HeartRate != 0 &&
		(*latest.HeartRate < 50 || *latest.HeartRate > 110) {
		condition = DoctorConditionAbnormalHR
		alerts = append(alerts, "Abnormal heart rate")
	}

	if category := latest.BPCategory(); category != nil {
		switch *category {
		case models.BPStage2:
			condition = DoctorConditionSevereHTN
			alerts = append(alerts, "Stage 2 Hypertension")
		case models.BPStage1:
			condition = DoctorConditionStage1HTN
			alerts = append(alerts, "Stage 1 Hypertension")
		}
	}

	return condition, alerts
}
