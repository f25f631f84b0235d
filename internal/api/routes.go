package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/device/ingest", handler.DeviceIngest)

	auth := app.Group("/api/auth")
	auth.Post("/register/patient", handler.RegisterPatient)
	auth.Post("/register/doctor", handler.RegisterDoctor)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	patient := app.Group("/api/patient", handler.AuthRequired)
	patient.Get("/dashboard", handler.PatientOnly, handler.PatientDashboard)
	patient.Get("/measurements", handler.ListMeasurements)
	patient.Get("/symptoms", handler.ListSymptoms)
	patient.Get("/menstrual", handler.ListCycles)
	patient.Post("/devices", handler.PatientOnly, handler.RegisterDevice)

	doctor := app.Group("/api/doctor", handler.AuthRequired, handler.DoctorOnly)
	doctor.Get("/dashboard", handler.DoctorDashboard)
	doctor.Get("/patients", handler.DoctorPatients)
	doctor.Post("/patients/assign", handler.AssignPatient)

	app.Put("/api/profile", handler.AuthRequired, handler.UpdateProfile)

	app.Post("/patient/symptom/submit", handler.AuthRequired, handler.SubmitSymptom)
	app.Post("/patient/menstrual/record", handler.AuthRequired, handler.RecordCycle)
	app.Post("/patient/menstrual/close", handler.AuthRequired, handler.CloseCycle)
}
