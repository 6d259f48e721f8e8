package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/red-stick-digital/brga-backend/api/routes"
	"github.com/red-stick-digital/brga-backend/internal/announcements"
	"github.com/red-stick-digital/brga-backend/internal/auth"
	"github.com/red-stick-digital/brga-backend/internal/contact"
	"github.com/red-stick-digital/brga-backend/internal/directory"
	"github.com/red-stick-digital/brga-backend/internal/events"
	"github.com/red-stick-digital/brga-backend/internal/groups"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/auth/session"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/mailer"
	"github.com/red-stick-digital/brga-backend/pkg/migrate"
	"github.com/red-stick-digital/brga-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	mailClient, err := mailer.New(cfg.Mailer)
	if err != nil {
		logg.Error(context.Background(), "failed to create mail client", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	profileRepo := profiles.NewRepository(dbClient.DB())
	roleRepo := roles.NewRepository(dbClient.DB())
	groupRepo := groups.NewRepository(dbClient.DB())
	speakerRepo := contact.NewSpeakerRequestRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		RoleRepo:       roleRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.DefaultRegisterServiceParams(dbClient, cfg.Password))
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	directoryService, err := directory.NewService(directory.ServiceParams{
		ProfileRepo: profileRepo,
		GroupRepo:   groupRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create directory service", err)
		os.Exit(1)
	}

	announcementsService, err := announcements.NewService(announcements.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create announcements service", err)
		os.Exit(1)
	}

	eventsService, err := events.NewService(events.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create events service", err)
		os.Exit(1)
	}

	contactService, err := contact.NewService(contact.ServiceParams{
		Mailer:       mailClient,
		SpeakerRepo:  speakerRepo,
		MailerConfig: cfg.Mailer,
		Logger:       logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:               cfg,
			Logger:               logg,
			DB:                   dbClient,
			Redis:                redisClient,
			SessionChecker:       sessionManager,
			AuthService:          authService,
			RegisterService:      registerService,
			ProfileRepo:          profileRepo,
			GroupRepo:            groupRepo,
			RoleRepo:             roleRepo,
			SpeakerRequestRepo:   speakerRepo,
			DirectoryService:     directoryService,
			AnnouncementsService: announcementsService,
			EventsService:        eventsService,
			ContactService:       contactService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
