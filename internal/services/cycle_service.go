package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
)

var (
	ErrFemalePatientsOnly  = errors.New("menstrual tracking is only available for female patients")
	ErrInvalidPainLevel    = errors.New("pain level must be between 0 and 10")
	ErrCycleFieldsRequired = errors.New("please fill in all required fields")
	ErrInvalidFlow         = errors.New("invalid flow intensity")
	ErrCreateCycleFailed   = errors.New("create menstrual cycle failed")
	ErrNoOpenCycle         = errors.New("no open cycle to close")
	ErrEndBeforeStart      = errors.New("end date cannot be before the start date")
	ErrUpdateCycleFailed   = errors.New("update menstrual cycle failed")
)

type CycleWriteRepository interface {
	Create(cycle *models.MenstrualCycle) error
	Save(cycle *models.MenstrualCycle) error
	LatestByPatient(patientID uint) (models.MenstrualCycle, bool, error)
}

type CycleService struct {
	cycles   CycleWriteRepository
	tooltips ToolTipWriteRepository
	now      func() time.Time
}

func NewCycleService(cycles CycleWriteRepository, tooltips ToolTipWriteRepository) *CycleService {
	return &CycleService{
		cycles:   cycles,
		tooltips: tooltips,
		now:      time.Now,
	}
}

type CycleInput struct {
	StartDate     time.Time
	EndDate       *time.Time
	FlowIntensity string
	PainLevel     int
	Notes         string
}

type CycleResult struct {
	CycleID   uint
	RiskFlags []string
	Message   string
}

// Record validates and stores one cycle for a female patient and attaches a
// standalone tooltip with the assessed advisory.
func (service *CycleService) Record(profile *models.PatientProfile, input CycleInput) (CycleResult, error) {
	if !profile.IsFemale() {
		return CycleResult{}, ErrFemalePatientsOnly
	}
	if input.PainLevel < models.MinPainLevel || input.PainLevel > models.MaxPainLevel {
		return CycleResult{}, ErrInvalidPainLevel
	}
	if input.StartDate.IsZero() || strings.TrimSpace(input.FlowIntensity) == "" {
		return CycleResult{}, ErrCycleFieldsRequired
	}
	if !models.IsValidFlowIntensity(input.FlowIntensity) {
		return CycleResult{}, ErrInvalidFlow
	}

	cycle := models.MenstrualCycle{
		PatientID:     profile.ID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		FlowIntensity: input.FlowIntensity,
		PainLevel:     input.PainLevel,
		Notes:         input.Notes,
	}
	if err := service.cycles.Create(&cycle); err != nil {
		return CycleResult{}, fmt.Errorf("%w: %v", ErrCreateCycleFailed, err)
	}

	flags, message := AssessCycle(cycle.FlowIntensity, cycle.PainLevel)
	tooltip := models.ToolTip{
		PatientID: profile.ID,
		Message:   message,
		CreatedAt: service.now(),
	}
	if err := service.tooltips.Create(&tooltip); err != nil {
		return CycleResult{}, fmt.Errorf("%w: %v", ErrCreateToolTipFailed, err)
	}

	return CycleResult{
		CycleID:   cycle.ID,
		RiskFlags: flags,
		Message:   message,
	}, nil
}

// CloseLatest sets the end date on the patient's most recent cycle if it is
// still open. The stored cycle length recomputes through the save hook.
func (service *CycleService) CloseLatest(profile *models.PatientProfile, endDate time.Time) (models.MenstrualCycle, error) {
	if !profile.IsFemale() {
		return models.MenstrualCycle{}, ErrFemalePatientsOnly
	}

	cycle, found, err := service.cycles.LatestByPatient(profile.ID)
	if err != nil {
		return models.MenstrualCycle{}, err
	}
	if !found || cycle.EndDate != nil {
		return models.MenstrualCycle{}, ErrNoOpenCycle
	}
	if endDate.Before(cycle.StartDate) {
		return models.MenstrualCycle{}, ErrEndBeforeStart
	}

	cycle.EndDate = &endDate
	if err := service.cycles.Save(&cycle); err != nil {
		return models.MenstrualCycle{}, fmt.Errorf("%w: %v", ErrUpdateCycleFailed, err)
	}
	return cycle, nil
}
