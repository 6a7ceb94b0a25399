package seed

import (
	"log"

	"gorm.io/gorm"

	"divinelife/internal/models"
)

// Roles ensures the three baseline roles exist. Safe to run repeatedly.
func Roles(db *gorm.DB) ([]models.Role, error) {
	baseline := []models.Role{
		{Name: "admin", Label: "Administrator"},
		{Name: "member", Label: "Member"},
		{Name: "mc_leader", Label: "MC Leader"},
	}

	for i := range baseline {
		if err := db.Where("name = ?", baseline[i].Name).FirstOrCreate(&baseline[i]).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Seed OK | roles=[admin,member,mc_leader]")
	return baseline, nil
}
