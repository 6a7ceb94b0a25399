package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"divinelife/internal/models"
)

func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	sqlDB, _ := gdb.DB()
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("❌ Database ping failed: %v", err)
	}

	log.Println("✅ Database connected successfully")
	return gdb
}

// Migrate wires the custom role_user join model and creates or updates every
// table the API owns.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}); err != nil {
		return err
	}
	return gdb.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.AccessToken{},
		&models.MCMember{},
	)
}
