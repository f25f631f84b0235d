package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type ToolTipRepository struct {
	database *gorm.DB
}

func NewToolTipRepository(database *gorm.DB) *ToolTipRepository {
	return &ToolTipRepository{database: database}
}

func (repo *ToolTipRepository) Create(tooltip *models.ToolTip) error {
	return repo.database.Create(tooltip).Error
}

func (repo *ToolTipRepository) LatestByPatient(patientID uint) (models.ToolTip, bool, error) {
	var tooltip models.ToolTip
	result := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&tooltip)
	if result.Error != nil {
		return models.ToolTip{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ToolTip{}, false, nil
	}
	return tooltip, true, nil
}
