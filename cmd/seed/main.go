package main

import (
	"context"
	"log"
	"os"

	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/devops"
	"easattend.com/easattend/model"
	"easattend.com/easattend/security"
	"gorm.io/gorm"
)

// Creates the bootstrap admin account when it does not exist yet. Email
// comes from BOOTSTRAP_EMAIL, the initial password from BOOTSTRAP_PASSWORD.
func main() {
	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.BootstrapEmail == "" {
		log.Fatal("BOOTSTRAP_EMAIL is required")
	}
	password := os.Getenv("BOOTSTRAP_PASSWORD")
	if password == "" {
		log.Fatal("BOOTSTRAP_PASSWORD is required")
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConns)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	err = dm.Exec(context.Background(), func(db *gorm.DB) error {
		var count int64
		if err := db.Model(&model.User{}).Where("email = ?", cfg.BootstrapEmail).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("admin %s already exists, nothing to do", cfg.BootstrapEmail)
			return nil
		}

		hash, err := security.HashPassword(password, cfg.BcryptCost)
		if err != nil {
			return err
		}
		admin := model.User{
			Name:         "Administrator",
			Email:        cfg.BootstrapEmail,
			Role:         model.RoleAdmin,
			PasswordHash: hash,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("created admin %s (%s)", admin.Email, admin.ID)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
