package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"yardgate/cmd"
	yardhttp "yardgate/internal/adapters/in/http"
	"yardgate/internal/adapters/out/postgres/containerrepo"
	"yardgate/internal/adapters/out/postgres/gatelogrepo"
	"yardgate/internal/adapters/out/postgres/schedulerepo"
	"yardgate/internal/adapters/out/postgres/yardrepo"
	"yardgate/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	seedYard(gormDB, configs.YardCapacity)

	jobManager := jobs.NewJobManager(app.CreateScheduleUoWFactory(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	capacity, err := strconv.Atoi(goDotEnvVariable("YARD_CAPACITY"))
	if err != nil || capacity <= 0 {
		log.Fatalf("YARD_CAPACITY must be a positive integer")
	}

	return cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		YardCapacity: capacity,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&containerrepo.ContainerDTO{},
		&containerrepo.HistoryEntryDTO{},
		&schedulerepo.ScheduleDTO{},
		&gatelogrepo.LogEntryDTO{},
		&yardrepo.SlotDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

// seedYard makes sure every slot row exists before the first gate movement.
func seedYard(db *gorm.DB, capacity int) {
	slotRepo := yardrepo.NewGormYardSlotRepository(db)
	if err := slotRepo.EnsureCapacity(context.Background(), capacity); err != nil {
		log.Fatalf("Failed to seed yard slots: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := yardhttp.NewServer(
		app.CreateCreateScheduleCommandHandler(),
		app.CreateConfirmScheduleCommandHandler(),
		app.CreateRegisterGateMovementCommandHandler(),
		app.CreateOpenInspectionCommandHandler(),
		app.CreateCompleteChecklistCommandHandler(),
		app.CreateSubmitEIRCommandHandler(),
		app.CreateRegisterBillingCommandHandler(),
		app.CreateGetDirectoryQueryHandler(),
		app.CreateGetGateLogQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
