package initializers

import (
	"log"

	"github.com/miracle-naturals/miracle-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.EmailOTP{},
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.ImageUpload{},
		&models.Recipe{},
		&models.AboutVideo{},
	)
	log.Println("Database synced successfully.")
}
