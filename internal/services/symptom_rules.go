package services

import "github.com/arikhalder/medwatch/internal/models"

// DefaultSymptomMessage is the conservative fallback for symptom types the
// rule table does not cover.
const DefaultSymptomMessage = "Monitor your symptoms and follow up with your doctor if things worsen."

type symptomRule func(latest *models.Measurement) string

// symptomRules keys every handled symptom type to its message rule. The
// table intentionally covers cough, nausea and shortness_of_breath even
// though the persisted choice list does not include them.
var symptomRules = map[string]symptomRule{
	models.SymptomFever:             feverMessage,
	models.SymptomHeadache:          constantMessage("Headache reported. Rest in a quiet, dim room, stay hydrated. Seek help if severe or sudden."),
	models.SymptomFatigue:           fatigueMessage,
	models.SymptomChestPain:         chestPainMessage,
	models.SymptomShortnessOfBreath: shortnessOfBreathMessage,
	models.SymptomCough:             constantMessage("Cough reported. Monitor for fever and breathing difficulty. Seek medical advice if cough is persistent or severe."),
	models.SymptomDizziness:         constantMessage("Dizziness/nausea reported. Sit or lie down safely, sip water. Seek help if you faint or symptoms get worse."),
	models.SymptomNausea:            constantMessage("Dizziness/nausea reported. Sit or lie down safely, sip water. Seek help if you faint or symptoms get worse."),
}

// SymptomMessage maps a reported symptom plus the patient's latest known
// measurement to one advisory string. Total: unknown types get the default.
func SymptomMessage(symptomType string, latest *models.Measurement) string {
	rule, ok := symptomRules[symptomType]
	if !ok {
		return DefaultSymptomMessage
	}
	return rule(latest)
}

func constantMessage(message string) symptomRule {
	return func(*models.Measurement) string {
		return message
	}
}

func feverMessage(latest *models.Measurement) string {
	if latest == nil || latest.Temperature == nil || *latest.Temperature == 0 {
		return "Fever reported — monitor temperature regularly, rest, and stay hydrated."
	}
	temperature := *latest.Temperature
	if temperature >= 38.5 {
		return "High temperature recorded (≥38.5°C). Rest, stay hydrated, consider antipyretic, and contact your healthcare provider."
	}
	if temperature >= 37.5 {
		return "Mild fever recorded. Rest, hydrate, and re-check temperature in 2–3 hours."
	}
	return "Fever reported but latest temperature is normal. Re-check temperature and monitor."
}

func fatigueMessage(latest *models.Measurement) string {
	if latest != nil && latest.HeartRate != nil && *latest.HeartRate > 100 {
		return "Fatigue with elevated heart rate. Rest, avoid strenuous activity, and contact your doctor if it continues."
	}
	return "Fatigue reported. Ensure adequate sleep and hydration; contact your clinician if persistent."
}

func chestPainMessage(latest *models.Measurement) string {
	if hasLowSpO2(latest) {
		return "Chest pain with low SpO₂ detected. Seek urgent medical attention (call emergency services)."
	}
	return "Chest pain reported — seek immediate medical attention."
}

func shortnessOfBreathMessage(latest *models.Measurement) string {
	if hasLowSpO2(latest) {
		return "Shortness of breath with low SpO₂. Seek urgent medical care."
	}
	return "Shortness of breath reported. Sit upright, try controlled breathing. Seek care if it worsens."
}

func hasLowSpO2(latest *models.Measurement) bool {
	return latest != nil && latest.SpO2 != nil && *latest.SpO2 != 0 && *latest.SpO2 < 94
}
