package api

import (
	"time"

	"github.com/arikhalder/medwatch/internal/db"
	"github.com/arikhalder/medwatch/internal/services"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		validate:     validator.New(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.repositories.Patients)
	handler.ingestService = services.NewIngestService(
		handler.repositories.Devices,
		handler.repositories.Patients,
		handler.repositories.Measurements,
	)
	handler.symptomService = services.NewSymptomService(
		handler.repositories.Symptoms,
		handler.repositories.Measurements,
		handler.repositories.ToolTips,
	)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles, handler.repositories.ToolTips)
	handler.dashboardService = services.NewDashboardService(
		handler.repositories.Patients,
		handler.repositories.Measurements,
		handler.repositories.Symptoms,
		handler.repositories.Cycles,
		handler.repositories.ToolTips,
	)
	return handler
}
