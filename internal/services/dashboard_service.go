package services

import (
	"fmt"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
)

const (
	RecentSymptomsLimit = 10
	RecentCyclesLimit   = 3
)

type DashboardMeasurementRepository interface {
	LatestByPatient(patientID uint) (models.Measurement, bool, error)
}

type DashboardSymptomRepository interface {
	RecentByPatient(patientID uint, limit int) ([]models.Symptom, error)
}

type DashboardCycleRepository interface {
	LatestByPatient(patientID uint) (models.MenstrualCycle, bool, error)
	RecentByPatient(patientID uint, limit int) ([]models.MenstrualCycle, error)
}

type DashboardToolTipRepository interface {
	LatestByPatient(patientID uint) (models.ToolTip, bool, error)
}

type DashboardPatientRepository interface {
	ListByDoctor(doctorID uint) ([]models.PatientProfile, error)
}

type DashboardService struct {
	patients     DashboardPatientRepository
	measurements DashboardMeasurementRepository
	symptoms     DashboardSymptomRepository
	cycles       DashboardCycleRepository
	tooltips     DashboardToolTipRepository
}

func NewDashboardService(
	patients DashboardPatientRepository,
	measurements DashboardMeasurementRepository,
	symptoms DashboardSymptomRepository,
	cycles DashboardCycleRepository,
	tooltips DashboardToolTipRepository,
) *DashboardService {
	return &DashboardService{
		patients:     patients,
		measurements: measurements,
		symptoms:     symptoms,
		cycles:       cycles,
		tooltips:     tooltips,
	}
}

type PatientDashboard struct {
	Profile         models.PatientProfile
	Latest          *models.Measurement
	Recommendations []string
	RecentSymptoms  []models.Symptom
	LatestToolTip   *models.ToolTip
	RecentCycles    []models.MenstrualCycle
	ShowMenstrual   bool
}

// BuildPatientDashboard re-runs the patient-view classifiers over the
// latest reading and assembles the dashboard payload. Menstrual sections
// only populate for female patients.
func (service *DashboardService) BuildPatientDashboard(profile models.PatientProfile) (PatientDashboard, error) {
	dashboard := PatientDashboard{
		Profile:         profile,
		Recommendations: make([]string, 0, 4),
		ShowMenstrual:   profile.IsFemale(),
	}

	measurement, found, err := service.measurements.LatestByPatient(profile.ID)
	if err != nil {
		return PatientDashboard{}, fmt.Errorf("load latest measurement: %w", err)
	}
	if found {
		dashboard.Latest = &measurement
		dashboard.Recommendations = append(dashboard.Recommendations, PatientVitalsRecommendations(&measurement)...)
	}

	if profile.IsFemale() {
		latestCycle, haveCycle, err := service.cycles.LatestByPatient(profile.ID)
		if err != nil {
			return PatientDashboard{}, fmt.Errorf("load latest cycle: %w", err)
		}
		// The original dashboard only surfaces cycle advisories when a
		// measurement exists, so an empty vitals history stays quiet.
		if haveCycle && found {
			dashboard.Recommendations = append(dashboard.Recommendations, PatientCycleRecommendations(&latestCycle)...)
		}

		cycles, err := service.cycles.RecentByPatient(profile.ID, RecentCyclesLimit)
		if err != nil {
			return PatientDashboard{}, fmt.Errorf("load recent cycles: %w", err)
		}
		dashboard.RecentCycles = cycles
	}

	symptoms, err := service.symptoms.RecentByPatient(profile.ID, RecentSymptomsLimit)
	if err != nil {
		return PatientDashboard{}, fmt.Errorf("load recent symptoms: %w", err)
	}
	dashboard.RecentSymptoms = symptoms

	if tooltip, haveToolTip, err := service.tooltips.LatestByPatient(profile.ID); err != nil {
		return PatientDashboard{}, fmt.Errorf("load latest tooltip: %w", err)
	} else if haveToolTip {
		dashboard.LatestToolTip = &tooltip
	}

	return dashboard, nil
}

type PatientSummary struct {
	UserID     uint               `json:"user_id"`
	Username   string             `json:"username"`
	FullName   string             `json:"full_name"`
	Phone      string             `json:"phone"`
	Gender     string             `json:"gender"`
	LatestHR   *float64           `json:"latest_hr"`
	LatestSpO2 *float64           `json:"latest_spo2"`
	LatestTemp *float64           `json:"latest_temp"`
	LatestBP   *string            `json:"latest_bp"`
	BPCategory *models.BPCategory `json:"bp_category"`
	LastSeen   *time.Time         `json:"last_seen"`
	Condition  string             `json:"condition"`
	Alerts     []string           `json:"alerts"`
}

// DoctorRoster builds one summary row per assigned patient, in the order
// the store returns them.
func (service *DashboardService) DoctorRoster(doctorID uint) ([]PatientSummary, error) {
	profiles, err := service.patients.ListByDoctor(doctorID)
	if err != nil {
		return nil, fmt.Errorf("list assigned patients: %w", err)
	}

	roster := make([]PatientSummary, 0, len(profiles))
	for _, profile := range profiles {
		summary, err := service.buildPatientSummary(profile)
		if err != nil {
			return nil, err
		}
		roster = append(roster, summary)
	}
	return roster, nil
}

func (service *DashboardService) buildPatientSummary(profile models.PatientProfile) (PatientSummary, error) {
	summary := PatientSummary{
		UserID:    profile.UserID,
		Username:  profile.User.Username,
		FullName:  profile.User.FullName(),
		Phone:     profile.User.Phone,
		Gender:    profile.Gender,
		Condition: DoctorConditionStable,
		Alerts:    make([]string, 0, 3),
	}

	measurement, found, err := service.measurements.LatestByPatient(profile.ID)
	if err != nil {
		return PatientSummary{}, fmt.Errorf("load latest measurement: %w", err)
	}
	if found {
		summary.LatestHR = measurement.HeartRate
		summary.LatestSpO2 = measurement.SpO2
		summary.LatestTemp = measurement.Temperature
		if measurement.HasBloodPressure() {
			formatted := fmt.Sprintf("%d/%d", *measurement.SystolicBP, *measurement.DiastolicBP)
			summary.LatestBP = &formatted
			summary.BPCategory = measurement.BPCategory()
		}
		timestamp := measurement.Timestamp
		summary.LastSeen = &timestamp

		condition, alerts := DoctorVitalsAssessment(&measurement)
		summary.Condition = condition
		summary.Alerts = append(summary.Alerts, alerts...)
	}

	if profile.IsFemale() {
		latestCycle, haveCycle, err := service.cycles.LatestByPatient(profile.ID)
		if err != nil {
			return PatientSummary{}, fmt.Errorf("load latest cycle: %w", err)
		}
		if haveCycle {
			summary.Alerts = append(summary.Alerts, DoctorCycleAlerts(&latestCycle)...)
		}
	}

	return summary, nil
}
