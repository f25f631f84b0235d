package db

import (
	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(username)) = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(username)) = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

// DeleteAccountAndRelatedData removes a user and, for patients, the profile
// with everything hanging off it. Measurement, symptom, cycle and tooltip
// rows follow the profile through ON DELETE CASCADE.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var profile models.PatientProfile
		result := tx.Where("user_id = ?", userID).Limit(1).Find(&profile)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			if err := tx.Where("patient_id = ?", profile.ID).Delete(&models.ToolTip{}).Error; err != nil {
				return err
			}
			if err := tx.Where("patient_id = ?", profile.ID).Delete(&models.Symptom{}).Error; err != nil {
				return err
			}
			if err := tx.Where("patient_id = ?", profile.ID).Delete(&models.MenstrualCycle{}).Error; err != nil {
				return err
			}
			if err := tx.Where("patient_id = ?", profile.ID).Delete(&models.Measurement{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.PatientProfile{}, profile.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
