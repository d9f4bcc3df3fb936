package main

import (
	"log"

	"spp-tuition/app/config"
	"spp-tuition/app/database"
)

func main() {
	log.Println("Starting migration...")

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully")
}
