package initializers

import (
	"log"

	"github.com/campuscanteen/canteen-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{}, &models.Bill{})
	log.Println("Database synced successfully.")
}
