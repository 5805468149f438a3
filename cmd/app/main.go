package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/driverrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/trackingrepo"
	"laundry/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateSchema(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	defer app.Hub().Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containers; variables arrive from the
	// environment directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "laundry"),
		DBSslMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTLHours:     getEnvInt("JWT_TTL_HOURS", 24),
		FacilityLat:     getEnvFloat("FACILITY_LAT", 6.4281),
		FacilityLng:     getEnvFloat("FACILITY_LNG", 3.4219),
		FacilityAddress: getEnv("FACILITY_ADDRESS", "Laundry facility, Victoria Island"),
		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		SenderName:      getEnv("SENDER_NAME", "Laundry"),
		SenderEmail:     getEnv("SENDER_EMAIL", "noreply@example.com"),
		SupportWhatsApp: getEnv("SUPPORT_WHATSAPP", "2348000000000"),
		SupportPhone:    getEnv("SUPPORT_PHONE", "+2348000000000"),
		SupportEmail:    getEnv("SUPPORT_EMAIL", "support@example.com"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&trackingrepo.TrackingDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("migrate schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	tokens, err := httpadapter.NewTokenService(
		configs.JWTSecret, time.Duration(configs.JWTTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	app.CreateHTTPServer(tokens).RegisterRoutes(e)

	go func() {
		if startErr := e.Start("0.0.0.0:" + configs.HTTPPort); startErr != nil {
			e.Logger.Info("web server stopped: ", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		e.Logger.Error("shutdown: ", err)
	}
}
