package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/nkshtr/CropIn/internal/auth"
	"github.com/nkshtr/CropIn/internal/config"
	"github.com/nkshtr/CropIn/internal/db"
	"github.com/nkshtr/CropIn/internal/model"
	"github.com/nkshtr/CropIn/internal/repository"
)

const (
	adminEmail    = "admin@agriadvisor.com"
	adminPassword = "admin123"
)

// Seeds the bootstrap admin account so role-gated management is usable
// on a fresh database. Safe to run repeatedly.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)

	if _, err := users.FindByEmail(ctx, adminEmail); err == nil {
		log.Println("admin user already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("check admin: %v", err)
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := &model.User{
		Name:         "System Admin",
		Email:        adminEmail,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
		Location: &model.Location{
			Address:   "Headquarters",
			Longitude: 77.1025,
			Latitude:  28.7041,
		},
	}

	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin user created: %s", adminEmail)
}
