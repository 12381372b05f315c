package config

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresStorage "github.com/eventos-app/api/internal/adapters/database/postgres"
	redisStorage "github.com/eventos-app/api/internal/adapters/database/redis"
	"github.com/eventos-app/api/pkg/logger"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Load reads config.yaml and initializes the global logger. It must run
// before anything else touches viper.
func Load() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
}

// OpenDatabase connects to postgres and runs the gorm migrations.
func OpenDatabase() (*gorm.DB, error) {
	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = database.AutoMigrate(postgresStorage.Migrations...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return database, nil
}

// OpenRedis connects the session storage.
func OpenRedis() (*redisStorage.Client, error) {
	return redisStorage.New(redisStorage.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
}

// SMTPDialer builds the dialer for the notification mail channel.
func SMTPDialer() *gomail.Dialer {
	return gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.password"),
	)
}
