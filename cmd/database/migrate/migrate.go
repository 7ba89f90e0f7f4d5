package migration

import (
	"fmt"
	"log"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.NGO{}); err != nil {
		log.Fatalf("Error migrating NGO database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.AidRequest{}); err != nil {
		log.Fatalf("Error migrating aid request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Allocation{}); err != nil {
		log.Fatalf("Error migrating allocation database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
