package main

import (
	"flag"
	"log"

	"genshin-trade-center/internal/model"
	"genshin-trade-center/pkg/database"

	"github.com/joho/godotenv"
)

// Grants the ADMIN role to an existing account, for bootstrapping a
// catalog maintainer without touching the database by hand.
func main() {
	email := flag.String("email", "", "email of the account to promote")
	flag.Parse()

	if *email == "" {
		log.Fatal("❌ Usage: promote-admin -email user@example.com")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find the account
	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("❌ User %s not found in database: %v", *email, err)
	}

	// 4. Find the ADMIN role
	var role model.Role
	if err := db.Where("code = ?", model.RoleAdmin).First(&role).Error; err != nil {
		log.Fatalf("❌ ADMIN role not found (has the API seeded the roles?): %v", err)
	}

	// 5. Update
	if err := db.Model(&user).Update("role_id", role.ID).Error; err != nil {
		log.Fatalf("❌ Failed to update role in DB: %v", err)
	}

	log.Printf("✅ Success! %s (%s) now carries the ADMIN role", user.Username, *email)
}
