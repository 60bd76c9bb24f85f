package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"taskman/internal/cli"
	"taskman/internal/config"
	"taskman/internal/identity"
	"taskman/internal/repository"
	"taskman/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	ids := identity.NewManager(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	agendaRepo := repository.NewAgendaRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo, ids)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo, ids)
	agendaSvc := service.NewAgendaService(agendaRepo, taskRepo, ids)
	authSvc := service.NewAuthService(ids, categorySvc)
	adminSvc := service.NewAdminService(ids)
	reportSvc := service.NewReportService(taskRepo, agendaRepo, ids)
	seedSvc := service.NewSeedService(ids, categoryRepo, taskRepo, agendaRepo)

	if err := seedSvc.EnsureSeeded(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}

	app := &cli.App{
		Config:     cfg,
		Identity:   ids,
		Auth:       authSvc,
		Admin:      adminSvc,
		Categories: categorySvc,
		Tasks:      taskSvc,
		Agenda:     agendaSvc,
		Reports:    reportSvc,
	}

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
