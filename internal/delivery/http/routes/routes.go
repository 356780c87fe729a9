package routes

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/domain/identity"
)

// Registry wires every handler onto the fiber app. Signups, login, and
// job directory reads are public; everything else sits behind the
// bearer-token middleware with role scoping.
type Registry struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	identities   *handler.IdentityHandler
	candidates   *handler.CandidateHandler
	companies    *handler.CompanyHandler
	admins       *handler.AdminHandler
	jobs         *handler.JobHandler
	applications *handler.ApplicationHandler
	authMw       *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	identities *handler.IdentityHandler,
	candidates *handler.CandidateHandler,
	companies *handler.CompanyHandler,
	admins *handler.AdminHandler,
	jobs *handler.JobHandler,
	applications *handler.ApplicationHandler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:       health,
		auth:         auth,
		identities:   identities,
		candidates:   candidates,
		companies:    companies,
		admins:       admins,
		jobs:         jobs,
		applications: applications,
		authMw:       authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.auth.RegisterRoutes(api)

	r.registerIdentities(api)
	r.registerCandidates(api)
	r.registerCompanies(api)
	r.registerAdmins(api)
	r.registerJobs(api)
	r.registerApplications(api)
}

func (r *Registry) registerIdentities(api fiber.Router) {
	g := api.Group("/identities")
	g.Get("/email/:email", r.identities.ResolveByEmail, r.authMw.Require(identity.RoleAdmin))
}

func (r *Registry) registerCandidates(api fiber.Router) {
	g := api.Group("/candidates")
	authed := r.authMw.Require()

	g.Post("/", r.candidates.Create)
	g.Get("/", r.candidates.List, authed)
	g.Get("/:id", r.candidates.GetByID, authed)
	g.Get("/email/:email", r.candidates.GetByEmail, authed)
	g.Get("/search/skill/:skill", r.candidates.SearchBySkill, authed)
	g.Put("/:id", r.candidates.Update, r.authMw.Require(identity.RoleCandidate, identity.RoleAdmin))
	g.Delete("/:id", r.candidates.Delete, r.authMw.Require(identity.RoleCandidate, identity.RoleAdmin))
}

func (r *Registry) registerCompanies(api fiber.Router) {
	g := api.Group("/companies")

	g.Post("/", r.companies.Create)
	g.Get("/", r.companies.List)
	g.Get("/:id", r.companies.GetByID)
	g.Get("/email/:email", r.companies.GetByEmail)
	g.Put("/:id", r.companies.Update, r.authMw.Require(identity.RoleCompany, identity.RoleAdmin))
	g.Delete("/:id", r.companies.Delete, r.authMw.Require(identity.RoleCompany, identity.RoleAdmin))
}

func (r *Registry) registerAdmins(api fiber.Router) {
	g := api.Group("/admins", r.authMw.Require(identity.RoleAdmin))

	g.Post("/", r.admins.Create)
	g.Get("/", r.admins.List)
	g.Get("/:id", r.admins.GetByID)
	g.Get("/email/:email", r.admins.GetByEmail)
	g.Put("/:id", r.admins.Update)
	g.Delete("/:id", r.admins.Delete)
}

func (r *Registry) registerJobs(api fiber.Router) {
	g := api.Group("/jobs")
	mutate := r.authMw.Require(identity.RoleCompany, identity.RoleAdmin)

	g.Get("/", r.jobs.List)
	g.Get("/:id", r.jobs.GetByID)
	g.Get("/company/:companyId", r.jobs.ListByCompany)
	g.Get("/search/position/:position", r.jobs.SearchByPosition)
	g.Get("/search/location/:location", r.jobs.SearchByLocation)
	g.Get("/search/skill/:skill", r.jobs.SearchBySkill)
	g.Post("/", r.jobs.Create, mutate)
	g.Put("/:id", r.jobs.Update, mutate)
	g.Delete("/:id", r.jobs.Delete, mutate)
	g.Post("/reconcile/:companyId", r.jobs.ReconcileCompany, r.authMw.Require(identity.RoleAdmin))
}

func (r *Registry) registerApplications(api fiber.Router) {
	g := api.Group("/job-applications")
	authed := r.authMw.Require()

	g.Post("/", r.applications.Create, r.authMw.Require(identity.RoleCandidate))
	g.Get("/", r.applications.List, authed)
	g.Get("/:id", r.applications.GetByID, authed)
	g.Get("/candidate/:candidateId", r.applications.ListByCandidate, authed)
	g.Get("/job/:jobId", r.applications.ListByJob, authed)
	g.Get("/status/:status", r.applications.ListByStatus, authed)
	g.Put("/:id/status", r.applications.UpdateStatus, r.authMw.Require(identity.RoleCompany, identity.RoleAdmin))
	g.Delete("/:id", r.applications.Delete, r.authMw.Require(identity.RoleCandidate, identity.RoleAdmin))
}
