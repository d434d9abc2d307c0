package db

import (
	"log"
	"time"

	"github.com/EstudioRosa/nail-scheduler/internal/config"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.BlockedSlot{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Unicidade do slot vale apenas para agendamentos confirmados:
	// cancelados liberam o horário de novo
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
        ON appointments (appointment_date, appointment_time)
        WHERE status = 'confirmed'
    `)

	return db
}
