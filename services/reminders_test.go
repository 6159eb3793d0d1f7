package services

import (
	"testing"
	"time"
	"zenitmanager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
)

func TestRemindDueTasks(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	soon := now.Add(6 * time.Hour)
	far := now.Add(72 * time.Hour)
	assignees := datatypes.NewJSONSlice([]model.Assignee{{ID: "u1"}, {ID: "u2"}})

	dueSoon := model.Task{Title: "due soon", DueDate: &soon, Assignees: assignees}
	dueFar := model.Task{Title: "due far", DueDate: &far, Assignees: assignees}
	noAssignees := model.Task{Title: "nobody", DueDate: &soon}
	require.NoError(t, db.Create(&dueSoon).Error)
	require.NoError(t, db.Create(&dueFar).Error)
	require.NoError(t, db.Create(&noAssignees).Error)

	reminded, err := RemindDueTasks(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, reminded)

	var notifications []model.Notification
	require.NoError(t, db.Find(&notifications).Error)
	assert.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, "/tasks?taskId="+dueSoon.ID, n.Link)
	}
}

func TestRemindDueTasksOnlyOnce(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	soon := now.Add(6 * time.Hour)
	task := model.Task{
		Title:     "due soon",
		DueDate:   &soon,
		Assignees: datatypes.NewJSONSlice([]model.Assignee{{ID: "u1"}}),
	}
	require.NoError(t, db.Create(&task).Error)

	first, err := RemindDueTasks(db, now)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := RemindDueTasks(db, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, second)

	var count int64
	db.Model(&model.Notification{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRemindDueTasksSkipsDone(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	project := model.Project{Name: "P"}
	statuses, err := CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)
	doneID := statuses[3].ID

	soon := now.Add(6 * time.Hour)
	task := model.Task{
		Title:     "already done",
		DueDate:   &soon,
		StatusID:  &doneID,
		ProjectID: &project.ID,
		Assignees: datatypes.NewJSONSlice([]model.Assignee{{ID: "u1"}}),
	}
	require.NoError(t, db.Create(&task).Error)

	reminded, err := RemindDueTasks(db, now)
	require.NoError(t, err)
	assert.Zero(t, reminded)
}
