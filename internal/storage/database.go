package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &GeneratedWizard{}, &Match{}); err != nil {
		return nil, err
	}
	return db, nil
}
