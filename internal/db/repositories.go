package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Patients     *PatientProfileRepository
	Measurements *MeasurementRepository
	Symptoms     *SymptomRepository
	Cycles       *CycleRepository
	ToolTips     *ToolTipRepository
	Devices      *DeviceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Patients:     NewPatientProfileRepository(database),
		Measurements: NewMeasurementRepository(database),
		Symptoms:     NewSymptomRepository(database),
		Cycles:       NewCycleRepository(database),
		ToolTips:     NewToolTipRepository(database),
		Devices:      NewDeviceRepository(database),
	}
}
