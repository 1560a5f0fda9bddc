package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-checkin-system/handlers"
	"event-checkin-system/middleware"
	"event-checkin-system/models"
	"event-checkin-system/services"
	"event-checkin-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := utils.ConfigFromEnv()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // roster spreadsheets stay small
	})

	app.Use(middleware.RequestLogger())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Participant{},
		&models.Checkin{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if cfg.R2Enabled() {
		if err := utils.InitR2(cfg); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
	} else if err := utils.EnsureArchiveDir(); err != nil {
		log.Fatal("failed to ensure uploads dir:", err)
	}

	checkinService := services.NewCheckinService(db)
	rosterService := services.NewRosterService(db, checkinService, cfg)
	statsService := services.NewStatsService(db)

	statsService.StartSnapshotScheduler(15 * time.Minute)

	handlers.SetupRosterRoutes(app, rosterService)
	handlers.SetupCheckinRoutes(app, checkinService)
	handlers.SetupStatsRoutes(app, statsService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	log.Println("✅ Attendance snapshot job running (every 15m)")
	if cfg.R2Enabled() {
		log.Println("✅ Upload archiving to R2 enabled")
	}

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
