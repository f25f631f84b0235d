package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) Create(cycle *models.MenstrualCycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Save(cycle *models.MenstrualCycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) LatestByPatient(patientID uint) (models.MenstrualCycle, bool, error) {
	var cycle models.MenstrualCycle
	result := repo.database.
		Where("patient_id = ?", patientID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.MenstrualCycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MenstrualCycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) RecentByPatient(patientID uint, limit int) ([]models.MenstrualCycle, error) {
	cycles := make([]models.MenstrualCycle, 0)
	query := repo.database.
		Where("patient_id = ?", patientID).
		Order("start_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}
