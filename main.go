package main

import (
	"os"

	"github.com/joho/godotenv"

	"wavebarber-backend/config"
	"wavebarber-backend/controllers"
	"wavebarber-backend/models"
	"wavebarber-backend/routes"
	"wavebarber-backend/services"
)

func init() {
	// Load environment variables
	err := godotenv.Load()
	config.SetupLogger()
	if err != nil {
		config.Log.Info().Msg("no .env file found")
	}

	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.Appointment{},
		&models.Service{},
		&models.DayAvailability{},
		&models.CustomTimeRange{},
		&models.NotificationLog{},
	); err != nil {
		config.Log.Fatal().Err(err).Msg("migration failed")
	}

	// One confirmed booking per slot, enforced by the store itself so two
	// near-simultaneous submissions cannot both land.
	if err := config.DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_confirmed_slot
		 ON appointments ("date", "time")
		 WHERE status = 'confirmed' AND deleted_at IS NULL`,
	).Error; err != nil {
		config.Log.Fatal().Err(err).Msg("slot uniqueness index failed")
	}

	if err := controllers.SeedServices(config.DB); err != nil {
		config.Log.Fatal().Err(err).Msg("service catalog seed failed")
	}
}

func main() {
	notifier := services.NewNotifier(config.DB)
	controllers.Notifier = notifier

	reminders := services.NewReminderService(config.DB, notifier)
	reminders.StartScheduler()
	defer reminders.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	config.Log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatal().Err(err).Msg("server stopped")
	}
}
