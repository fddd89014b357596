package main

import (
	"log"
	"os"
	"time"

	"degrondvraag-be/internal/constant"
	"degrondvraag-be/internal/model"
	"degrondvraag-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdmin(db)
	seedEssays(db)

	color.Green("Seeding completed")
}

// seedAdmin creates the console account from ADMIN_EMAIL / ADMIN_PASSWORD.
// Idempotent: an existing account is left untouched.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        &email,
		PasswordHash: &hashStr,
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin: %v", err)
	}
	color.Green("Created admin '%s'", email)
}

func seedEssays(db *gorm.DB) {
	essays := []model.Essay{
		{
			Slug:    "de-vraag-onder-de-vraag",
			Title:   "De vraag onder de vraag",
			Excerpt: "Waarom de eerste vraag zelden de echte vraag is.",
			Body: "## De eerste vraag\n\nWie een vraag stelt, heeft meestal al een " +
				"antwoord in gedachten. De interessante vraag zit daaronder.\n",
			Date:   time.Now().Format("2006-01-02"),
			Status: constant.EssayStatusPublished,
		},
		{
			Slug:    "twijfel-als-methode",
			Title:   "Twijfel als methode",
			Excerpt: "Over het verschil tussen twijfelen en besluiteloosheid.",
			Body:    "Twijfel is geen zwakte maar gereedschap.\n",
			Date:    time.Now().Format("2006-01-02"),
			Status:  constant.EssayStatusDraft,
		},
	}

	for _, e := range essays {
		var existing model.Essay
		if err := db.Where("slug = ?", e.Slug).First(&existing).Error; err == nil {
			color.Yellow("Essay '%s' already exists, skipping", e.Slug)
			continue
		}
		if err := db.Create(&e).Error; err != nil {
			log.Fatalf("Error: Failed to create essay '%s': %v", e.Slug, err)
		}
		color.Green("Created essay '%s'", e.Slug)
	}
}
