package database

import (
	"fmt"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Team{},
			&models.TeamMember{},
			&models.Rule{},
			&models.RuleBreak{},
			&models.Payment{},
			&models.Expense{},
			&models.JoinRequest{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		if err := migrateLegacyAdminFlag(db); err != nil {
			return nil, fmt.Errorf("migrate legacy admin flag: %w", err)
		}
	}

	return db, nil
}

// migrateLegacyAdminFlag converts the old team_members.is_admin boolean into
// the role enum. Legacy rows carry no owner marker, so true maps to admin and
// false to member; the column is dropped afterwards so only one role
// representation survives.
func migrateLegacyAdminFlag(db *gorm.DB) error {
	migrator := db.Migrator()
	if !migrator.HasColumn(&models.TeamMember{}, "is_admin") {
		return nil
	}

	if err := db.Exec(`UPDATE team_members
		SET role = CASE WHEN is_admin THEN 'admin' ELSE 'member' END
		WHERE role IS NULL OR role = ''`).Error; err != nil {
		return err
	}

	return migrator.DropColumn(&models.TeamMember{}, "is_admin")
}
