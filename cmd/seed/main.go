package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"candidate-tracker/internal/config"
	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/gateway"
)

type seedUser struct {
	name       string
	emailKey   string
	passKey    string
	role       domain.Role
	department string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	users := gateway.NewUserGateway(db)
	ctx := context.Background()

	existing, err := users.SelectAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}
	byEmail := make(map[string]bool, len(existing))
	for _, row := range existing {
		byEmail[row.Email] = true
	}

	seeds := []seedUser{
		{"Admin", "SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD", domain.RoleAdmin, "Management"},
		{"Manager", "SEED_MANAGER_EMAIL", "SEED_MANAGER_PASSWORD", domain.RoleManager, "Recruitment"},
		{"Employee", "SEED_EMPLOYEE_EMAIL", "SEED_EMPLOYEE_PASSWORD", domain.RoleEmployee, "Recruitment"},
	}

	for _, s := range seeds {
		email := os.Getenv(s.emailKey)
		password := os.Getenv(s.passKey)
		if email == "" || password == "" {
			log.Printf("Skipping %s: %s or %s not set", s.name, s.emailKey, s.passKey)
			continue
		}
		if byEmail[email] {
			log.Printf("User %s already exists, skipping", email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", email, err)
		}

		row := gateway.UserRow{
			ID:           uuid.New(),
			Name:         s.name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         string(s.role),
			Department:   s.department,
			CreatedAt:    time.Now().UTC(),
		}
		if _, err := users.Insert(ctx, row); err != nil {
			log.Fatalf("Failed to seed user %s: %v", email, err)
		}
		log.Printf("Seeded %s user %s", s.role, email)
	}
}
