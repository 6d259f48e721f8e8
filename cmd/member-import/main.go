package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/red-stick-digital/brga-backend/internal/groups"
	"github.com/red-stick-digital/brga-backend/internal/memberimport"
	"github.com/red-stick-digital/brga-backend/internal/profiles"
	"github.com/red-stick-digital/brga-backend/internal/roles"
	"github.com/red-stick-digital/brga-backend/internal/users"
	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/db"
	"github.com/red-stick-digital/brga-backend/pkg/logger"
	"github.com/red-stick-digital/brga-backend/pkg/mailer"
	"github.com/red-stick-digital/brga-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "member-import"})

	_ = godotenv.Load()

	file := flag.String("file", "", "path to the member CSV export")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "missing -file")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "member-import",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rows, err := memberimport.ParseFile(*file)
	if err != nil {
		logg.Error(ctx, "failed to parse member csv", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	mailClient, err := mailer.New(cfg.Mailer)
	if err != nil {
		logg.Error(ctx, "failed to create mail client", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	profileRepo := profiles.NewRepository(dbClient.DB())
	roleRepo := roles.NewRepository(dbClient.DB())
	groupRepo := groups.NewRepository(dbClient.DB())

	runner, err := memberimport.NewRunner(memberimport.RunnerParams{
		Resolver:    memberimport.NewGroupResolver(groupRepo),
		Provisioner: memberimport.NewProvisioner(userRepo, cfg.Password, cfg.Import),
		Writer:      memberimport.NewRecordWriter(roleRepo, profileRepo, logg),
		Notifier:    memberimport.NewWelcomeNotifier(mailClient, cfg.Mailer),
		Logger:      logg,
		JobMetrics:  metrics.NewJobMetrics(nil),
		Import:      cfg.Import,
	})
	if err != nil {
		logg.Error(ctx, "failed to build import runner", err)
		os.Exit(1)
	}

	summary, err := runner.Run(ctx, rows)
	if summary != nil {
		memberimport.WriteReport(os.Stdout, summary)
	}
	if err != nil {
		logg.Error(ctx, "import interrupted", err)
		os.Exit(1)
	}
}
