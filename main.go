package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/events-planner/config"
	"github.com/Eursukkul/events-planner/internal/consumer"
	"github.com/Eursukkul/events-planner/internal/handler"
	"github.com/Eursukkul/events-planner/internal/middleware"
	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/repository"
	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/Eursukkul/events-planner/pkg/database"
	"github.com/Eursukkul/events-planner/pkg/rabbitmq"
	"github.com/Eursukkul/events-planner/pkg/scheduler"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Messaging is optional: without RABBITMQ_URL the services run without a publisher.
	var publisher service.Publisher
	var mqConsumer *rabbitmq.Consumer
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p

		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()
	}

	// Repositories
	participantRepo := repository.NewParticipantRepository(db)
	eventRepo := repository.NewEventRepository(db)
	logisticsRepo := repository.NewLogisticsRepository(db)

	// Services
	associationSvc := service.NewAssociationService(participantRepo, eventRepo, logisticsRepo, publisher)
	costFilter := service.CostFilter{
		Name:    cfg.CostJobName,
		Surname: cfg.CostJobSurname,
		Role:    models.Role(cfg.CostJobRole),
	}
	if err := costFilter.Validate(); err != nil {
		log.Fatalf("invalid COST_JOB_ROLE: %v", err)
	}
	costSvc := service.NewCostService(eventRepo, costFilter, publisher)

	if mqConsumer != nil {
		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewLogisticsConsumer(associationSvc).Start(msgs)
	}

	costJob, err := scheduler.New("cost recomputation", cfg.CostJobSchedule, costSvc.RecomputeCosts)
	if err != nil {
		log.Fatalf("failed to schedule cost job: %v", err)
	}
	costJob.Start()

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "events-planner"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	handler.NewParticipantHandler(associationSvc).RegisterRoutes(api.Group("/participants"))
	handler.NewEventHandler(associationSvc, costSvc).RegisterRoutes(api.Group("/events"))
	handler.NewLogisticsHandler(associationSvc).RegisterRoutes(api.Group("/logistics"))

	go func() {
		log.Printf("Events Planner starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	costJob.Stop(ctx)
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
