package db

import (
	"time"

	"github.com/arikhalder/medwatch/internal/models"
	"gorm.io/gorm"
)

type DeviceRepository struct {
	database *gorm.DB
}

func NewDeviceRepository(database *gorm.DB) *DeviceRepository {
	return &DeviceRepository{database: database}
}

func (repo *DeviceRepository) Create(device *models.Device) error {
	return repo.database.Create(device).Error
}

func (repo *DeviceRepository) FindByToken(token string) (models.Device, error) {
	var device models.Device
	if err := repo.database.Where("token = ?", token).First(&device).Error; err != nil {
		return models.Device{}, err
	}
	return device, nil
}

// TouchLastSeen records device activity. This write is deliberately not
// tied to the measurement insert in a transaction.
func (repo *DeviceRepository) TouchLastSeen(deviceID string, seenAt time.Time) error {
	return repo.database.Model(&models.Device{}).
		Where("id = ?", deviceID).
		Update("last_seen", seenAt).Error
}
