package services

import "github.com/arikhalder/medwatch/internal/models"

const (
	RiskFlagHeavyBleeding = "heavy_bleeding"
	RiskFlagSeverePain    = "severe_pain"
)

const SeverePainThreshold = 8

const (
	MsgCycleHeavyFlow  = "Heavy flow reported. Monitor for signs of anemia and rest adequately."
	MsgCycleSeverePain = "Severe menstrual pain reported. Consider pain management and consult your doctor."
	MsgCycleRecorded   = "Menstrual cycle recorded. Track any changes in flow or pain levels."

	MsgPatientHeavyBleeding = "Heavy menstrual bleeding detected - monitor for anemia symptoms."
	MsgPatientSeverePain    = "Severe menstrual pain reported - consider medical evaluation."

	AlertHeavyBleeding = "Heavy menstrual bleeding"
	AlertSeverePain    = "Severe menstrual pain"
)

// AssessCycle turns flow intensity and pain level into risk flags plus one
// advisory message. Both flags may set, but the message follows precedence:
// heavy flow wins over severe pain.
func AssessCycle(flowIntensity string, painLevel int) ([]string, string) {
	flags := make([]string, 0, 2)
	if flowIntensity == models.FlowHeavy {
		flags = append(flags, RiskFlagHeavyBleeding)
	}
	if painLevel >= SeverePainThreshold {
		flags = append(flags, RiskFlagSeverePain)
	}

	switch {
	case flowIntensity == models.FlowHeavy:
		return flags, MsgCycleHeavyFlow
	case painLevel >= SeverePainThreshold:
		return flags, MsgCycleSeverePain
	default:
		return flags, MsgCycleRecorded
	}
}

// PatientCycleRecommendations produces the patient-dashboard advisories for
// the most recent cycle. Unlike the recorded message, both lines may appear.
func PatientCycleRecommendations(latestCycle *models.MenstrualCycle) []string {
	recommendations := make([]string, 0, 2)
	if latestCycle == nil {
		return recommendations
	}
	if latestCycle.FlowIntensity == models.FlowHeavy {
		recommendations = append(recommendations, MsgPatientHeavyBleeding)
	}
	if latestCycle.PainLevel >= SeverePainThreshold {
		recommendations = append(recommendations, MsgPatientSeverePain)
	}
	return recommendations
}

// DoctorCycleAlerts reuses the two flag conditions for the roster alert
// list. Both alerts can fire for one cycle.
func DoctorCycleAlerts(latestCycle *models.MenstrualCycle) []string {
	alerts := make([]string, 0, 2)
	if latestCycle == nil {
		return alerts
	}
	if latestCycle.FlowIntensity == models.FlowHeavy {
		alerts = append(alerts, AlertHeavyBleeding)
	}
	if latestCycle.PainLevel >= SeverePainThreshold {
		alerts = append(alerts, AlertSeverePain)
	}
	return alerts
}
