package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"canteen/cmd"
	httpin "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/postgres/lineitemrepo"
	"canteen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetSummaryStatsQueryHandler(),
		configs.SummaryReportInterval,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		StaffAccessCode:       os.Getenv("STAFF_ACCESS_CODE"),
		AdminAccessCode:       os.Getenv("ADMIN_ACCESS_CODE"),
		SummaryReportInterval: envSeconds("SUMMARY_REPORT_INTERVAL_SECONDS", 15),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envSeconds(key string, fallback int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback) * time.Second
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Warnf("Invalid %s=%q, using %ds", key, value, fallback)
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&lineitemrepo.LineItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateApproveOrderCommandHandler(),
		app.CreateDeclineOrderCommandHandler(),
		app.CreateMarkPreparedCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateClearOrdersCommandHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetOrdersByTokenQueryHandler(),
		app.CreateGetGroupProgressQueryHandler(),
		app.CreateGetSummaryStatsQueryHandler(),
		app.CreateGetSnapshotQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.NewRoleGate(configs.StaffAccessCode, configs.AdminAccessCode))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
