package services

import (
	"errors"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
)

type fakeDeviceRepo struct {
	devices  map[string]models.Device
	lastSeen map[string]time.Time
}

func newFakeDeviceRepo(devices ...models.Device) *fakeDeviceRepo {
	repo := &fakeDeviceRepo{
		devices:  make(map[string]models.Device),
		lastSeen: make(map[string]time.Time),
	}
	for _, device := range devices {
		repo.devices[device.Token] = device
	}
	return repo
}

func (repo *fakeDeviceRepo) FindByToken(token string) (models.Device, error) {
	device, ok := repo.devices[token]
	if !ok {
		return models.Device{}, errors.New("record not found")
	}
	return device, nil
}

func (repo *fakeDeviceRepo) TouchLastSeen(deviceID string, seenAt time.Time) error {
	repo.lastSeen[deviceID] = seenAt
	return nil
}

type fakePatientRepo struct {
	profilesByUser map[uint]models.PatientProfile
	profiles       []models.PatientProfile
}

func newFakePatientRepo(profiles ...models.PatientProfile) *fakePatientRepo {
	repo := &fakePatientRepo{profilesByUser: make(map[uint]models.PatientProfile)}
	for _, profile := range profiles {
		repo.profilesByUser[profile.UserID] = profile
		repo.profiles = append(repo.profiles, profile)
	}
	return repo
}

func (repo *fakePatientRepo) FindByUserID(userID uint) (models.PatientProfile, error) {
	profile, ok := repo.profilesByUser[userID]
	if !ok {
		return models.PatientProfile{}, errors.New("record not found")
	}
	return profile, nil
}

func (repo *fakePatientRepo) ListByDoctor(doctorID uint) ([]models.PatientProfile, error) {
	matched := make([]models.PatientProfile, 0)
	for _, profile := range repo.profiles {
		if profile.AssignedDoctorID != nil && *profile.AssignedDoctorID == doctorID {
			matched = append(matched, profile)
		}
	}
	return matched, nil
}

type fakeMeasurementRepo struct {
	created []models.Measurement
	latest  map[uint]models.Measurement
	nextID  uint
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{latest: make(map[uint]models.Measurement), nextID: 1}
}

func (repo *fakeMeasurementRepo) Create(measurement *models.Measurement) error {
	measurement.ID = repo.nextID
	repo.nextID++
	repo.created = append(repo.created, *measurement)
	repo.latest[measurement.PatientID] = *measurement
	return nil
}

func (repo *fakeMeasurementRepo) LatestByPatient(patientID uint) (models.Measurement, bool, error) {
	measurement, ok := repo.latest[patientID]
	if !ok {
		return models.Measurement{}, false, nil
	}
	return measurement, true, nil
}

type fakeSymptomRepo struct {
	created []models.Symptom
	nextID  uint
}

func newFakeSymptomRepo() *fakeSymptomRepo {
	return &fakeSymptomRepo{nextID: 1}
}

func (repo *fakeSymptomRepo) Create(symptom *models.Symptom) error {
	symptom.ID = repo.nextID
	repo.nextID++
	repo.created = append(repo.created, *symptom)
	return nil
}

func (repo *fakeSymptomRepo) RecentByPatient(patientID uint, limit int) ([]models.Symptom, error) {
	matched := make([]models.Symptom, 0)
	for index := len(repo.created) - 1; index >= 0; index-- {
		if repo.created[index].PatientID != patientID {
			continue
		}
		matched = append(matched, repo.created[index])
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

type fakeCycleRepo struct {
	created []models.MenstrualCycle
	nextID  uint
}

func newFakeCycleRepo(cycles ...models.MenstrualCycle) *fakeCycleRepo {
	repo := &fakeCycleRepo{nextID: 1}
	for _, cycle := range cycles {
		cycle.ID = repo.nextID
		repo.nextID++
		repo.created = append(repo.created, cycle)
	}
	return repo
}

func (repo *fakeCycleRepo) Create(cycle *models.MenstrualCycle) error {
	cycle.ID = repo.nextID
	repo.nextID++
	cycle.CycleLength = models.ComputeCycleLength(cycle.StartDate, cycle.EndDate)
	repo.created = append(repo.created, *cycle)
	return nil
}

func (repo *fakeCycleRepo) Save(cycle *models.MenstrualCycle) error {
	cycle.CycleLength = models.ComputeCycleLength(cycle.StartDate, cycle.EndDate)
	for index := range repo.created {
		if repo.created[index].ID == cycle.ID {
			repo.created[index] = *cycle
			return nil
		}
	}
	repo.created = append(repo.created, *cycle)
	return nil
}

func (repo *fakeCycleRepo) LatestByPatient(patientID uint) (models.MenstrualCycle, bool, error) {
	var latest models.MenstrualCycle
	found := false
	for _, cycle := range repo.created {
		if cycle.PatientID != patientID {
			continue
		}
		if !found || cycle.StartDate.After(latest.StartDate) {
			latest = cycle
			found = true
		}
	}
	return latest, found, nil
}

func (repo *fakeCycleRepo) RecentByPatient(patientID uint, limit int) ([]models.MenstrualCycle, error) {
	matched := make([]models.MenstrualCycle, 0)
	for index := len(repo.created) - 1; index >= 0; index-- {
		if repo.created[index].PatientID != patientID {
			continue
		}
		matched = append(matched, repo.created[index])
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched, nil
}

type fakeToolTipRepo struct {
	created []models.ToolTip
	nextID  uint
}

func newFakeToolTipRepo() *fakeToolTipRepo {
	return &fakeToolTipRepo{nextID: 1}
}

func (repo *fakeToolTipRepo) Create(tooltip *models.ToolTip) error {
	tooltip.ID = repo.nextID
	repo.nextID++
	repo.created = append(repo.created, *tooltip)
	return nil
}

func (repo *fakeToolTipRepo) LatestByPatient(patientID uint) (models.ToolTip, bool, error) {
	for index := len(repo.created) - 1; index >= 0; index-- {
		if repo.created[index].PatientID == patientID {
			return repo.created[index], true, nil
		}
	}
	return models.ToolTip{}, false, nil
}
