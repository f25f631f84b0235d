package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arikhalder/medwatch/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUserRepository interface {
	ExistsByNormalizedUsername(username string) (bool, error)
	FindByNormalizedUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthPatientRepository interface {
	Create(profile *models.PatientProfile) error
}

type AuthService struct {
	users    AuthUserRepository
	patients AuthPatientRepository
	now      func() time.Time
}

func NewAuthService(users AuthUserRepository, patients AuthPatientRepository) *AuthService {
	return &AuthService{
		users:    users,
		patients: patients,
		now:      time.Now,
	}
}

type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    string
}

// RegisterPatient creates the user plus its patient profile; registration
// is the only place a profile comes into existence.
func (service *AuthService) RegisterPatient(registration Registration) (models.User, error) {
	user, err := service.createUser(registration, models.RolePatient)
	if err != nil {
		return models.User{}, err
	}

	profile := models.PatientProfile{
		UserID: user.ID,
		Gender: registration.Gender,
	}
	if err := service.patients.Create(&profile); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) RegisterDoctor(registration Registration) (models.User, error) {
	return service.createUser(registration, models.RoleDoctor)
}

func (service *AuthService) createUser(registration Registration, role string) (models.User, error) {
	username := NormalizeUsername(registration.Username)
	exists, err := service.users.ExistsByNormalizedUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        strings.TrimSpace(registration.Email),
		PasswordHash: string(passwordHash),
		FirstName:    strings.TrimSpace(registration.FirstName),
		LastName:     strings.TrimSpace(registration.LastName),
		Phone:        strings.TrimSpace(registration.Phone),
		Gender:       registration.Gender,
		Role:         role,
		CreatedAt:    service.now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUsernameTaken
	}
	return user, nil
}

func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedUsername(NormalizeUsername(username))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
