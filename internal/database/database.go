package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/logger"
)

// New открывает соединение с PostgreSQL по конфигурации.
func New(cfg *config.Cfg, log *logger.Zap) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormlogger.Default.LogMode(gormlogger.Silent),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе: %w", err)
	}

	log.Info("подключение к базе установлено")
	return db, nil
}

// Close закрывает пул соединений.
func Close(db *gorm.DB, log *logger.Zap) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("не удалось получить соединение для закрытия")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("ошибка закрытия соединения с базой")
	}
}
