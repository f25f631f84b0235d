package services

import (
	"testing"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
)

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func measurementWithBP(systolic int, diastolic int) *models.Measurement {
	return &models.Measurement{
		SystolicBP:  intPtr(systolic),
		DiastolicBP: intPtr(diastolic),
	}
}
