package api

import (
	"github.com/arikhalder/medwatch/internal/models"
	"github.com/gofiber/fiber/v2"
)

func measurementView(measurement models.Measurement) fiber.Map {
	view := fiber.Map{
		"id":                 measurement.ID,
		"timestamp":          measurement.Timestamp,
		"heart_rate":         measurement.HeartRate,
		"spo2":               measurement.SpO2,
		"temperature":        measurement.Temperature,
		"systolic_bp":        measurement.SystolicBP,
		"diastolic_bp":       measurement.DiastolicBP,
		"menstrual_pain":     measurement.MenstrualPain,
		"bleeding_intensity": measurement.BleedingIntensity,
		"device_id":          measurement.DeviceID,
		"note":               measurement.Note,
		"bp_category":        nil,
	}
	if category := measurement.BPCategory(); category != nil {
		view["bp_category"] = *category
	}
	return view
}

func measurementViews(measurements []models.Measurement) []fiber.Map {
	views := make([]fiber.Map, 0, len(measurements))
	for _, measurement := range measurements {
		views = append(views, measurementView(measurement))
	}
	return views
}

func symptomViews(symptoms []models.Symptom) []fiber.Map {
	views := make([]fiber.Map, 0, len(symptoms))
	for _, symptom := range symptoms {
		views = append(views, fiber.Map{
			"id":           symptom.ID,
			"symptom_type": symptom.SymptomType,
			"display":      models.SymptomTypeDisplay(symptom.SymptomType),
			"severity":     symptom.Severity,
			"created_at":   symptom.CreatedAt,
		})
	}
	return views
}

func cycleViews(cycles []models.MenstrualCycle) []fiber.Map {
	views := make([]fiber.Map, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, fiber.Map{
			"id":             cycle.ID,
			"start_date":     cycle.StartDate,
			"end_date":       cycle.EndDate,
			"cycle_length":   cycle.CycleLength,
			"flow_intensity": cycle.FlowIntensity,
			"pain_level":     cycle.PainLevel,
			"notes":          cycle.Notes,
		})
	}
	return views
}

func tooltipView(tooltip models.ToolTip) fiber.Map {
	return fiber.Map{
		"id":         tooltip.ID,
		"symptom_id": tooltip.SymptomID,
		"message":    tooltip.Message,
		"created_at": tooltip.CreatedAt,
	}
}
