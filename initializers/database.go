package initializers

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB opens the MySQL connection, retrying while the database
// container is still coming up.
func ConnectToDB() {
	dsn := os.Getenv("MYSQL_URL")
	if dsn == "" {
		log.Fatal("MYSQL_URL is not set")
	}

	var err error
	for retries := 15; retries > 0; retries-- {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("Connected to MySQL.")
			return
		}
		log.Println("Waiting for MySQL...")
		time.Sleep(4 * time.Second)
	}
	log.Fatal("MySQL not reachable after retries: ", err)
}
