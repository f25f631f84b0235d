package api

import "encoding/json"

type ingestInput struct {
	PatientUserID uint            `json:"patient_user_id"`
	Timestamp     string          `json:"timestamp"`
	HeartRate     *float64        `json:"heart_rate" validate:"omitempty,gt=0"`
	SpO2          *float64        `json:"spo2" validate:"omitempty,gte=0,lte=100"`
	Temperature   *float64        `json:"temperature" validate:"omitempty,gt=20,lt=46"`
	SystolicBP    *int            `json:"systolic_bp" validate:"omitempty,gte=0"`
	DiastolicBP   *int            `json:"diastolic_bp" validate:"omitempty,gte=0"`
	MenstrualPain *int            `json:"menstrual_pain" validate:"omitempty,gte=0,lte=10"`
	Bleeding      *string         `json:"bleeding_intensity"`
	RawPPG        json.RawMessage `json:"raw_ppg"`
	Note          *string         `json:"note"`
}

type registrationInput struct {
	Username  string `json:"username" form:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" form:"email" validate:"omitempty,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Phone     string `json:"phone" form:"phone"`
	Gender    string `json:"gender" form:"gender" validate:"omitempty,oneof=M F"`
}

type loginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type symptomFormInput struct {
	SymptomType string `form:"symptom_type"`
	Severity    int    `form:"severity"`
}

type cycleFormInput struct {
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	FlowIntensity string `form:"flow_intensity"`
	PainLevel     int    `form:"pain_level"`
	Notes         string `form:"notes"`
}

type deviceInput struct {
	Name string `json:"name" form:"name" validate:"required,min=1,max=100"`
}

type cycleCloseFormInput struct {
	EndDate string `form:"end_date"`
}

type assignPatientInput struct {
	PatientUserID uint `json:"patient_user_id" form:"patient_user_id"`
}

type profileUpdateInput struct {
	FirstName         *string `json:"first_name" form:"first_name"`
	LastName          *string `json:"last_name" form:"last_name"`
	Email             *string `json:"email" form:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone" form:"phone"`
	DateOfBirth       *string `json:"date_of_birth" form:"date_of_birth"`
	HasFibroidHistory *bool   `json:"has_fibroid_history" form:"has_fibroid_history"`
}
