package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yb-lee/sns-feed-backend/internal/config"
	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/types"
)

type GormService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormService(cfg config.StorageConfig, log *logger.Logger) (*GormService, error) {
	serviceLog := log.With("service", "GormService")

	gormCfg := &gorm.Config{
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Backend {
	case "sqlite":
		serviceLog.Info("Opening SQLite database...", "path", cfg.SQLitePath)
		// _foreign_keys is a DSN parameter so every pooled connection
		// gets foreign key enforcement, not just the first one.
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), gormCfg)
	default:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost,
			cfg.PostgresPort, cfg.PostgresName, cfg.PostgresSSLMode)
		serviceLog.Info("Connecting to Postgres...", "host", cfg.PostgresHost, "db", cfg.PostgresName)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	}
	if err != nil {
		serviceLog.Error("Failed to open database", "backend", cfg.Backend, "error", err)
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Backend, err)
	}

	return &GormService{db: db, log: serviceLog}, nil
}

func (s *GormService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.Post{},
		&types.Comment{},
		&types.Like{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *GormService) DB() *gorm.DB {
	return s.db
}
