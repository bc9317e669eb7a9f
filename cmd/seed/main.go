package main

import (
	"log/slog"
	"os"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/database"
	"github.com/agencyworks/agency-cms/internal/logging"
	"github.com/agencyworks/agency-cms/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the initial super admin and the starter categories. Safe to run more
// than once: existing rows are left untouched.
func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seedAdmin(database.DB); err != nil {
		slog.Error("admin seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedCategories(database.DB); err != nil {
		slog.Error("category seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete")
}

func seedAdmin(db *gorm.DB) error {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("admin already exists, skipping", "email", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Super Admin",
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	slog.Info("created super admin", "email", email)
	return nil
}

func seedCategories(db *gorm.DB) error {
	starters := []models.Category{
		{Name: "마케팅 칼럼", Slug: "marketing-column", Order: 1, IsActive: true},
		{Name: "바이럴 마케팅", Slug: "viral-marketing", Order: 2, IsActive: true},
		{Name: "블로그 관리", Slug: "blog-management", Order: 3, IsActive: true},
	}

	for _, cat := range starters {
		var count int64
		if err := db.Model(&models.Category{}).Where("slug = ?", cat.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		slog.Info("created category", "slug", cat.Slug)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
