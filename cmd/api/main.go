package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/config"
	"github.com/noah-isme/joineazy-go-api/internal/handler"
	"github.com/noah-isme/joineazy-go-api/internal/middleware"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
	"github.com/noah-isme/joineazy-go-api/internal/router"
	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/session"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	backend, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open store backend: %v", err)
	}
	defer closeStore()

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(backend)
	courseRepo := repository.NewCourseRepository(backend)
	assignmentRepo := repository.NewAssignmentRepository(backend)
	groupRepo := repository.NewGroupRepository(backend)

	sessions := session.NewManager(backend, logger)

	authService := service.NewAuthService(userRepo, sessions, validate, logger)
	courseService := service.NewCourseService(courseRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, courseRepo, validate, logger)
	groupService := service.NewGroupService(groupRepo, assignmentRepo, courseRepo, validate, logger)
	acknowledgmentService := service.NewAcknowledgmentService(assignmentRepo, courseRepo, groupRepo, logger)
	professorDashboardService := service.NewProfessorDashboardService(courseRepo, assignmentRepo, logger)
	studentDashboardService := service.NewStudentDashboardService(courseRepo, assignmentRepo, groupRepo, logger)

	seedService, err := service.NewSeedService(userRepo, courseRepo, assignmentRepo, groupRepo, cfg.SeedEnabled, cfg.SeedToken, logger)
	if err != nil {
		log.Fatalf("failed to create seed service: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:               handler.NewAuthHandler(authService, logger),
		CourseHandler:             handler.NewCourseHandler(courseService, logger),
		AssignmentHandler:         handler.NewAssignmentHandler(assignmentService, logger),
		GroupHandler:              handler.NewGroupHandler(groupService, logger),
		StudentHandler:            handler.NewStudentHandler(studentDashboardService, acknowledgmentService, logger),
		ProfessorDashboardHandler: handler.NewProfessorDashboardHandler(professorDashboardService, logger),
		SeedHandler:               handler.NewSeedHandler(seedService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func openStore(cfg config.Config) (store.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		return store.NewMemoryStore(), noop, nil
	case config.StoreRedis:
		redisStore, err := store.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return redisStore, func() { _ = redisStore.Close() }, nil
	case config.StoreSQLite:
		db, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		gormStore, err := store.NewGormStore(db)
		if err != nil {
			return nil, noop, err
		}
		return gormStore, noop, nil
	case config.StorePostgres:
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		gormStore, err := store.NewGormStore(db)
		if err != nil {
			return nil, noop, err
		}
		return gormStore, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
