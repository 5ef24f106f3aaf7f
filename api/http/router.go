package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/recruit/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Jobs       *handlers.JobHandler
	Candidates *handlers.CandidateHandler
	Data       *handlers.DataHandler
	Intake     *handlers.IntakeHandler
	Assessment *handlers.AssessmentHandler
}

// Middleware: Auth guards recruiter routes, Intake guards the chat bot webhook.
type Middleware struct {
	Auth   fiber.Handler
	Intake fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, mw Middleware, filesDir string) {
	// a panicking request answers 500 instead of taking the process down
	app.Use(recover.New())

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	// Recruiter back-office
	jobs := v1.Group("/jobs", mw.Auth)
	jobs.Post("/", h.Jobs.Create)
	jobs.Patch("/:id", h.Jobs.Update)
	jobs.Delete("/:id", h.Jobs.Delete)

	cg := v1.Group("/candidates", mw.Auth)
	cg.Post("/upload", h.Candidates.Upload)
	cg.Patch("/:id/status", h.Candidates.UpdateStatus)
	cg.Post("/:id/assessments", h.Candidates.CreateAssessment)
	cg.Get("/:id/behavioral-profile", h.Candidates.BehavioralProfile)

	dg := v1.Group("/data", mw.Auth)
	dg.Get("/", h.Data.All)
	dg.Get("/stats", h.Data.Stats)

	// Chat bot
	v1.Post("/intake/chat", mw.Intake, h.Intake.Chat)

	// Public questionnaire, the token in the link is the only credential
	ag := v1.Group("/assessments")
	ag.Get("/token/:token", h.Assessment.ByToken)
	ag.Post("/:id/submit", h.Assessment.Submit)
	ag.Get("/:id/result", h.Assessment.Result)

	if filesDir != "" {
		app.Static("/files", filesDir)
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
}
