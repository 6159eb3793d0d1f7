package services

import (
	"testing"
	"zenitmanager/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}
