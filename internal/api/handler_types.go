package api

import (
	"time"

	"github.com/arikhalder/medwatch/internal/db"
	"github.com/arikhalder/medwatch/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	validate     *validator.Validate

	repositories     *db.Repositories
	authService      *services.AuthService
	ingestService    *services.IngestService
	symptomService   *services.SymptomService
	cycleService     *services.CycleService
	dashboardService *services.DashboardService
}

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type FlashPayload struct {
	FormError   string `json:"form_error,omitempty"`
	FormSuccess string `json:"form_success,omitempty"`
}

const authTokenTTL = 7 * 24 * time.Hour
