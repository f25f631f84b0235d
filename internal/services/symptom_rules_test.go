package services

import (
	"strings"
	"testing"

	"github.com/arikhalder/medwatch/internal/models"
)

func TestSymptomMessage_Fever(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		latest      *models.Measurement
		wantContain string
	}{
		{
			name:        "high temperature",
			latest:      &models.Measurement{Temperature: floatPtr(38.7)},
			wantContain: "High temperature recorded (≥38.5°C)",
		},
		{
			name:        "mild fever",
			latest:      &models.Measurement{Temperature: floatPtr(37.9)},
			wantContain: "Mild fever recorded",
		},
		{
			name:        "normal temperature",
			latest:      &models.Measurement{Temperature: floatPtr(36.5)},
			wantContain: "latest temperature is normal",
		},
		{
			name:        "no measurement",
			latest:      nil,
			wantContain: "monitor temperature regularly",
		},
		{
			name:        "measurement without temperature",
			latest:      &models.Measurement{HeartRate: floatPtr(70)},
			wantContain: "monitor temperature regularly",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := SymptomMessage(models.SymptomFever, testCase.latest)
			if !strings.Contains(got, testCase.wantContain) {
				t.Fatalf("expected message containing %q, got %q", testCase.wantContain, got)
			}
		})
	}
}

func TestSymptomMessage_VitalsDependentRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		symptomType string
		latest      *models.Measurement
		wantContain string
	}{
		{
			name:        "fatigue with elevated heart rate",
			symptomType: models.SymptomFatigue,
			latest:      &models.Measurement{HeartRate: floatPtr(105)},
			wantContain: "Fatigue with elevated heart rate",
		},
		{
			name:        "fatigue without vitals",
			symptomType: models.SymptomFatigue,
			latest:      nil,
			wantContain: "Ensure adequate sleep",
		},
		{
			name:        "chest pain with low spo2",
			symptomType: models.SymptomChestPain,
			latest:      &models.Measurement{SpO2: floatPtr(92)},
			wantContain: "Chest pain with low SpO₂",
		},
		{
			name:        "chest pain without spo2",
			symptomType: models.SymptomChestPain,
			latest:      &models.Measurement{},
			wantContain: "seek immediate medical attention",
		},
		{
			name:        "shortness of breath with low spo2",
			symptomType: models.SymptomShortnessOfBreath,
			latest:      &models.Measurement{SpO2: floatPtr(90)},
			wantContain: "Shortness of breath with low SpO₂",
		},
		{
			name:        "shortness of breath with normal spo2",
			symptomType: models.SymptomShortnessOfBreath,
			latest:      &models.Measurement{SpO2: floatPtr(97)},
			wantContain: "Sit upright, try controlled breathing",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := SymptomMessage(testCase.symptomType, testCase.latest)
			if !strings.Contains(got, testCase.wantContain) {
				t.Fatalf("expected message containing %q, got %q", testCase.wantContain, got)
			}
		})
	}
}

func TestSymptomMessage_ConstantAndFallbackRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		symptomType string
		wantContain string
	}{
		{name: "headache", symptomType: models.SymptomHeadache, wantContain: "Rest in a quiet, dim room"},
		{name: "cough legacy type", symptomType: models.SymptomCough, wantContain: "Cough reported"},
		{name: "dizziness", symptomType: models.SymptomDizziness, wantContain: "Dizziness/nausea reported"},
		{name: "nausea legacy type", symptomType: models.SymptomNausea, wantContain: "Dizziness/nausea reported"},
		{name: "persisted type without rule", symptomType: models.SymptomPelvicPain, wantContain: DefaultSymptomMessage},
		{name: "unknown type", symptomType: "sore_throat", wantContain: DefaultSymptomMessage},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := SymptomMessage(testCase.symptomType, nil)
			if !strings.Contains(got, testCase.wantContain) {
				t.Fatalf("expected message containing %q, got %q", testCase.wantContain, got)
			}
		})
	}
}
