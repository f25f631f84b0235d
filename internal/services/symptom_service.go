package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrSymptomTypeRequired = errors.New("please select a symptom before submitting")
	ErrInvalidSeverity     = errors.New("severity must be between 1 and 10")
	ErrCreateSymptomFailed = errors.New("create symptom failed")
	ErrCreateToolTipFailed = errors.New("create tooltip failed")
)

const (
	MinSeverity = 1
	MaxSeverity = 10
)

type SymptomWriteRepository interface {
	Create(symptom *models.Symptom) error
}

type SymptomMeasurementRepository interface {
	LatestByPatient(patientID uint) (models.Measurement, bool, error)
}

type ToolTipWriteRepository interface {
	Create(tooltip *models.ToolTip) error
}

type SymptomService struct {
	symptoms     SymptomWriteRepository
	measurements SymptomMeasurementRepository
	tooltips     ToolTipWriteRepository
	now          func() time.Time
}

func NewSymptomService(
	symptoms SymptomWriteRepository,
	measurements SymptomMeasurementRepository,
	tooltips ToolTipWriteRepository,
) *SymptomService {
	return &SymptomService{
		symptoms:     symptoms,
		measurements: measurements,
		tooltips:     tooltips,
		now:          time.Now,
	}
}

// Submit persists one symptom record plus one generated tooltip referencing
// it, and returns the advisory message. The message rule reads the latest
// measurement snapshot; re-running it on the same snapshot always yields the
// same message.
func (service *SymptomService) Submit(profile *models.PatientProfile, symptomType string, severity int) (string, error) {
	symptomType = strings.TrimSpace(symptomType)
	if symptomType == "" {
		return "", ErrSymptomTypeRequired
	}
	if severity < MinSeverity || severity > MaxSeverity {
		return "", ErrInvalidSeverity
	}
	// Types outside the persisted choice list are accepted (older clients
	// still send them) but logged so the divergence stays visible.
	if !models.IsPersistedSymptomType(symptomType) {
		logrus.WithField("symptom_type", symptomType).Warn("symptom type outside the persisted choice list")
	}

	symptom := models.Symptom{
		PatientID:   profile.ID,
		SymptomType: symptomType,
		Severity:    severity,
		CreatedAt:   service.now(),
	}
	if err := service.symptoms.Create(&symptom); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCreateSymptomFailed, err)
	}

	var latest *models.Measurement
	if measurement, found, err := service.measurements.LatestByPatient(profile.ID); err == nil && found {
		latest = &measurement
	}

	message := SymptomMessage(symptomType, latest)
	tooltip := models.ToolTip{
		PatientID: profile.ID,
		SymptomID: &symptom.ID,
		Message:   message,
		CreatedAt: service.now(),
	}
	if err := service.tooltips.Create(&tooltip); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCreateToolTipFailed, err)
	}

	return message, nil
}
