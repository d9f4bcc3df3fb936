package main

import (
	"flag"
	"fmt"
	"log"

	"spp-tuition/app/config"
	"spp-tuition/app/database"
	"spp-tuition/app/models"
	"spp-tuition/app/routes/auth"
)

func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "login password")
	fullName := flag.String("name", "", "full name")
	email := flag.String("email", "", "email address (optional)")
	flag.Parse()

	if *username == "" || *password == "" || *fullName == "" {
		log.Fatal("Usage: add_admin -username <u> -password <p> -name <full name> [-email <e>]")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.Admin{
		Username: *username,
		Password: hash,
		FullName: *fullName,
		Email:    *email,
	}

	if err := database.NewAdminStore(db).Create(admin); err != nil {
		log.Fatalf("Error creating admin: %v", err)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", admin.FullName, admin.Username)
}
