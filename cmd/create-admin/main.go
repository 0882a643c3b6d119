// cmd/create-admin - Seed or promote an admin account
package main

import (
	"flag"
	"fmt"
	"log"

	"enigmaquest/database"
	"enigmaquest/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -username <name> -email <email> -password <password>")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	// Promote an existing account rather than duplicating it
	var existing models.User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		if existing.IsAdmin() {
			fmt.Printf("Admin %s already exists.\n", existing.Username)
			return
		}
		if err := db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
			log.Fatal("Failed to promote user:", err)
		}
		fmt.Printf("Promoted %s to admin.\n", existing.Username)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Username: *username,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user %s created successfully.\n", admin.Username)
}
