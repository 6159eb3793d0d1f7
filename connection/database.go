package connection

import (
	"fmt"
	"os"
	"zenitmanager/model"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DBConnection() (*gorm.DB, error) {
	godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.TaskStatus{},
		&model.Task{},
		&model.TaskComment{},
		&model.Contact{},
		&model.StudentMetric{},
		&model.Transaction{},
		&model.SystemTag{},
		&model.ContentItem{},
		&model.ContentComment{},
		&model.Notification{},
		&model.TeamMember{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
