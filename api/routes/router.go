package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/red-stick-digital/brga-backend/api/controllers"
	"github.com/red-stick-digital/brga-backend/api/middleware"
	"github.com/red-stick-digital/brga-backend/internal/announcements"
	"github.com/red-stick-digital/brga-backend/internal/auth"
	"github.com/red-stick-digital/brga-backend/internal/contact"
	"github.com/red-stick-digital/brga-backend/internal/directory"
	"github.com/red-stick-digital/brga-backend/internal/events"
	"github.com/red-stick-digital/brga-backend/internal/groups"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/pkg/auth/session"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker

	AuthService     auth.Service
	RegisterService auth.RegisterService

	ProfileRepo        *profiles.Repository
	GroupRepo          *groups.Repository
	RoleRepo           *roles.Repository
	SpeakerRequestRepo *contact.SpeakerRequestRepository

	DirectoryService     directory.Service
	AnnouncementsService announcements.Service
	EventsService        events.Service
	ContactService       contact.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Post("/contact", controllers.SubmitContactMessage(deps.ContactService, logg))
		r.Post("/speaker-requests", controllers.SubmitSpeakerRequest(deps.ContactService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.RegisterService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
			r.Post("/change-password", controllers.AuthChangePassword(deps.AuthService, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		// Own profile stays reachable while approval is pending so
		// migrated members can finish setup.
		r.Route("/me", func(r chi.Router) {
			r.Get("/profile", controllers.GetOwnProfile(deps.ProfileRepo, logg))
			r.Patch("/profile", controllers.UpdateOwnProfile(deps.ProfileRepo, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireApproved(logg))

			r.Get("/directory", controllers.ListDirectory(deps.DirectoryService, logg))

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", controllers.ListGroups(deps.GroupRepo, logg))
				r.Get("/{id}", controllers.GetGroup(deps.GroupRepo, logg))
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", controllers.ListAnnouncements(deps.AnnouncementsService, logg))
				r.Get("/{id}", controllers.GetAnnouncement(deps.AnnouncementsService, logg))
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", controllers.ListEvents(deps.EventsService, logg))
				r.Get("/{id}", controllers.GetEvent(deps.EventsService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.RequireRole(logg, "admin", "superadmin"))

		r.Post("/members/{id}/approve", controllers.ApproveMember(deps.RoleRepo, logg))

		r.Route("/announcements", func(r chi.Router) {
			r.Post("/", controllers.CreateAnnouncement(deps.AnnouncementsService, logg))
			r.Post("/{id}/publish", controllers.PublishAnnouncement(deps.AnnouncementsService, logg))
			r.Delete("/{id}", controllers.DeleteAnnouncement(deps.AnnouncementsService, logg))
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", controllers.CreateEvent(deps.EventsService, logg))
			r.Patch("/{id}", controllers.UpdateEvent(deps.EventsService, logg))
			r.Delete("/{id}", controllers.DeleteEvent(deps.EventsService, logg))
		})

		r.Route("/speaker-requests", func(r chi.Router) {
			r.Get("/", controllers.ListSpeakerRequests(deps.SpeakerRequestRepo, logg))
			r.Post("/{id}/handle", controllers.HandleSpeakerRequest(deps.SpeakerRequestRepo, logg))
		})
	})

	return r
}
