package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

// MeasurementListCap bounds the read endpoints; "latest" queries order by
// timestamp descending, so concurrent writes for one patient resolve to
// whatever the store saw last.
const MeasurementListCap = 500

type MeasurementRepository struct {
	database *gorm.DB
}

func NewMeasurementRepository(database *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{database: database}
}

func (repo *MeasurementRepository) Create(measurement *models.Measurement) error {
	return repo.database.Create(measurement).Error
}

func (repo *MeasurementRepository) LatestByPatient(patientID uint) (models.Measurement, bool, error) {
	var measurement models.Measurement
	result := repo.database.
		Where("patient_id = ?", patientID).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&measurement)
	if result.Error != nil {
		return models.Measurement{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Measurement{}, false, nil
	}
	return measurement, true, nil
}

func (repo *MeasurementRepository) ListByPatient(patientID uint, limit int) ([]models.Measurement, error) {
	if limit <= 0 || limit > MeasurementListCap {
		limit = MeasurementListCap
	}
	measurements := make([]models.Measurement, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (repo *MeasurementRepository) CountByPatient(patientID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Measurement{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
