package main

import (
	"net/http"
	"time"

	"github.com/eventos-app/api/internal/adapters/config"
	"github.com/eventos-app/api/internal/adapters/controller/http/handlers"
	"github.com/eventos-app/api/internal/adapters/database/postgres"
	"github.com/eventos-app/api/internal/domain/service"
	"github.com/eventos-app/api/pkg/logger"
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

	tokenLogger, err := logger.Named("tokenserver")
	if err != nil {
		logger.Log.Panicf("Failed to create logger: %v", err)
	}

	tokenService := service.NewTokenService(
		postgres.NewUserStorage(db),
		[]byte(viper.GetString("auth.token-secret")),
		viper.GetString("auth.token-issuer"),
		viper.GetDuration("auth.token-ttl"),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", handlers.NewTokenHandler(tokenLogger, tokenService).Login)

	addr := viper.GetString("tokenserver.listen-addr")
	logger.Log.Infof("Token server listening on %s", addr)
	if err = (&http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}).ListenAndServe(); err != nil {
		logger.Log.Panicf("Server stopped: %v", err)
	}
}
