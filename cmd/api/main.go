package main

import (
	"net/http"
	"time"

	"github.com/eventos-app/api/internal/adapters/config"
	"github.com/eventos-app/api/internal/adapters/controller/http/handlers"
	"github.com/eventos-app/api/internal/adapters/controller/http/middlewares"
	"github.com/eventos-app/api/internal/adapters/controller/http/setup"
	"github.com/eventos-app/api/internal/adapters/database/postgres"
	"github.com/eventos-app/api/internal/domain/service"
	"github.com/eventos-app/api/pkg/logger"
	"github.com/eventos-app/api/pkg/smtp"
	"github.com/spf13/viper"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	db, err := config.OpenDatabase()
	if err != nil {
		logger.Log.Panicf("Failed to open database: %v", err)
	}
	logger.Log.Info("Successfully connected to the database")

	rdb, err := config.OpenRedis()
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	}
	logger.Log.Info("Successfully connected to redis")

	userStorage := postgres.NewUserStorage(db)
	eventStorage := postgres.NewEventStorage(db)
	attendeeStorage := postgres.NewAttendeeStorage(db)
	commentStorage := postgres.NewCommentStorage(db)
	reminderStorage := postgres.NewReminderStorage(db)

	mailClient := smtp.NewClient(
		config.SMTPDialer(),
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.domain"),
	)

	schedulerLogger, err := logger.Named("scheduler")
	if err != nil {
		logger.Log.Panicf("Failed to create scheduler logger: %v", err)
	}
	apiLogger, err := logger.Named("api")
	if err != nil {
		logger.Log.Panicf("Failed to create api logger: %v", err)
	}

	reminderService := service.NewReminderService(schedulerLogger, reminderStorage, userStorage, mailClient)
	eventService := service.NewEventService(apiLogger, eventStorage, attendeeStorage, commentStorage, reminderStorage, reminderService)
	attendeeService := service.NewAttendeeService(apiLogger, attendeeStorage, eventStorage, reminderService)
	commentService := service.NewCommentService(commentStorage, eventStorage)
	statsService := service.NewStatsService(eventStorage, commentStorage)
	userService := service.NewUserService(userStorage, rdb.Sessions, viper.GetDuration("auth.session-ttl"))

	reminderService.StartScheduler()

	middle := middlewares.New(apiLogger, userService)
	mux := setup.Routes(
		middle,
		handlers.NewAuthHandler(apiLogger, userService),
		handlers.NewEventHandler(apiLogger, eventService, attendeeService),
		handlers.NewCommentHandler(apiLogger, commentService),
		handlers.NewStatsHandler(apiLogger, statsService),
	)

	addr := viper.GetString("server.listen-addr")
	logger.Log.Infof("API listening on %s", addr)
	if err = (&http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}).ListenAndServe(); err != nil {
		logger.Log.Panicf("Server stopped: %v", err)
	}
}
