package seeders

import (
	"log"

	"github.com/davlatbek/go-catalog/app/db/fakers"
	"github.com/davlatbek/go-catalog/app/models"
	"gorm.io/gorm"
)

const (
	categoriesToSeed         = 4
	productsPerCategory      = 5
	defaultSuperuserEmail    = "admin@example.com"
	defaultSuperuserPassword = "password123"
)

// DBSeed fills an empty database with demo catalog data and one staff
// account of each role.
func DBSeed(db *gorm.DB) error {
	for i := 0; i < categoriesToSeed; i++ {
		category := fakers.CategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}
		for j := 0; j < productsPerCategory; j++ {
			if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
				return err
			}
		}
	}

	superuser := fakers.UserFaker(models.RoleSuperuser)
	superuser.Email = defaultSuperuserEmail
	if err := db.FirstOrCreate(superuser, "email = ?", superuser.Email).Error; err != nil {
		return err
	}
	staff := fakers.UserFaker(models.RoleStaff)
	if err := db.Create(staff).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d categories, %d products, superuser %s (password %q)",
		categoriesToSeed, categoriesToSeed*productsPerCategory, superuser.Email, defaultSuperuserPassword)
	return nil
}
