package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDevice     = errors.New("invalid device token")
	ErrPatientRequired   = errors.New("missing patient_user_id")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidBleeding   = errors.New("invalid bleeding intensity")
	ErrMeasurementFailed = errors.New("create measurement failed")
)

type IngestDeviceRepository interface {
	FindByToken(token string) (models.Device, error)
	TouchLastSeen(deviceID string, seenAt time.Time) error
}

type IngestPatientRepository interface {
	FindByUserID(userID uint) (models.PatientProfile, error)
}

type IngestMeasurementRepository interface {
	Create(measurement *models.Measurement) error
}

type IngestService struct {
	devices      IngestDeviceRepository
	patients     IngestPatientRepository
	measurements IngestMeasurementRepository
	now          func() time.Time
}

func NewIngestService(
	devices IngestDeviceRepository,
	patients IngestPatientRepository,
	measurements IngestMeasurementRepository,
) *IngestService {
	return &IngestService{
		devices:      devices,
		patients:     patients,
		measurements: measurements,
		now:          time.Now,
	}
}

type IngestRequest struct {
	PatientUserID     uint
	Timestamp         string
	HeartRate         *float64
	SpO2              *float64
	Temperature       *float64
	SystolicBP        *int
	DiastolicBP       *int
	MenstrualPain     *int
	BleedingIntensity *string
	RawPPG            json.RawMessage
	Note              *string
}

type IngestResult struct {
	MeasurementID   uint
	Recommendations []string
}

// Ingest resolves the pushing device, stores one measurement for the target
// patient, bumps the device's last-seen stamp, and classifies the fresh
// reading with the ingestion thresholds. The last-seen update and the
// measurement insert are two independent writes; a crash between them
// leaves a stale stamp and that is acceptable.
func (service *IngestService) Ingest(deviceToken string, request IngestRequest) (IngestResult, error) {
	device, err := service.devices.FindByToken(deviceToken)
	if err != nil {
		return IngestResult{}, ErrUnknownDevice
	}

	if request.PatientUserID == 0 {
		return IngestResult{}, ErrPatientRequired
	}
	profile, err := service.patients.FindByUserID(request.PatientUserID)
	if err != nil {
		return IngestResult{}, ErrPatientNotFound
	}
	if request.BleedingIntensity != nil && !models.IsValidBleedingIntensity(*request.BleedingIntensity) {
		return IngestResult{}, ErrInvalidBleeding
	}

	deviceID := device.ID
	measurement := models.Measurement{
		PatientID:         profile.ID,
		Timestamp:         ParseMeasurementTimestamp(request.Timestamp, service.now()),
		HeartRate:         request.HeartRate,
		SpO2:              request.SpO2,
		Temperature:       request.Temperature,
		SystolicBP:        request.SystolicBP,
		DiastolicBP:       request.DiastolicBP,
		MenstrualPain:     request.MenstrualPain,
		BleedingIntensity: request.BleedingIntensity,
		DeviceID:          &deviceID,
		RawPPG:            request.RawPPG,
		Note:              request.Note,
	}
	if err := service.measurements.Create(&measurement); err != nil {
		return IngestResult{}, fmt.Errorf("%w: %v", ErrMeasurementFailed, err)
	}

	if err := service.devices.TouchLastSeen(device.ID, service.now()); err != nil {
		logrus.WithError(err).WithField("device_id", device.ID).Warn("failed to update device last seen")
	}

	return IngestResult{
		MeasurementID:   measurement.ID,
		Recommendations: IngestionRecommendations(&measurement),
	}, nil
}

// ParseMeasurementTimestamp parses a device-supplied ISO-8601 timestamp.
// Bad or absent timestamps never fail a push; the ingestion time is used
// instead.
func ParseMeasurementTimestamp(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return fallback
}
