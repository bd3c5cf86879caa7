package data

import (
	"log"

	"github.com/courtcheck/courtcheck/src/verifier/types"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func MustMySQL(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	return db
}

// Migrate creates or updates the schema for settings, run records, and the
// statistics dataset.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Setting{},
		&types.VerificationRecord{},
		&types.Team{},
		&types.Player{},
		&types.PlayerSeasonStat{},
		&types.GameResult{},
		&types.PlayerGameLine{},
		&types.Championship{},
	)
}
