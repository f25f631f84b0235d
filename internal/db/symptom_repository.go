package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) Create(symptom *models.Symptom) error {
	return repo.database.Create(symptom).Error
}

func (repo *SymptomRepository) RecentByPatient(patientID uint, limit int) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	query := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}
