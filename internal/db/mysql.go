package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clubsite/internal/model"
)

// NewMySQL returns a connected GORM DB instance. Query logging is kept at
// warn level so only slow queries and errors reach the server log.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables for everything the site stores:
// contact submissions, events, and team members.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ContactSubmission{},
		&model.Event{},
		&model.TeamMember{},
	)
}
