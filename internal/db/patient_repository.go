package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type PatientProfileRepository struct {
	database *gorm.DB
}

func NewPatientProfileRepository(database *gorm.DB) *PatientProfileRepository {
	return &PatientProfileRepository{database: database}
}

func (repo *PatientProfileRepository) Create(profile *models.PatientProfile) error {
	return repo.database.Create(profile).Error
}

func (repo *PatientProfileRepository) Save(profile *models.PatientProfile) error {
	return repo.database.Save(profile).Error
}

func (repo *PatientProfileRepository) FindByUserID(userID uint) (models.PatientProfile, error) {
	var profile models.PatientProfile
	if err := repo.database.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.PatientProfile{}, err
	}
	return profile, nil
}

// FindByUserIDForDoctor resolves a patient profile only when the patient is
// assigned to the given doctor.
func (repo *PatientProfileRepository) FindByUserIDForDoctor(userID uint, doctorID uint) (models.PatientProfile, error) {
	var profile models.PatientProfile
	if err := repo.database.Preload("User").
		Where("user_id = ? AND assigned_doctor_id = ?", userID, doctorID).
		First(&profile).Error; err != nil {
		return models.PatientProfile{}, err
	}
	return profile, nil
}

// ListByDoctor returns the doctor's assigned patients in insertion order.
func (repo *PatientProfileRepository) ListByDoctor(doctorID uint) ([]models.PatientProfile, error) {
	profiles := make([]models.PatientProfile, 0)
	if err := repo.database.Preload("User").
		Where("assigned_doctor_id = ?", doctorID).
		Order("id ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *PatientProfileRepository) AssignDoctor(profileID uint, doctorID *uint) error {
	return repo.database.Model(&models.PatientProfile{}).
		Where("id = ?", profileID).
		Update("assigned_doctor_id", doctorID).Error
}
