package services

import (
	"testing"
	"zenitmanager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectWithDefaults(t *testing.T) {
	db := openTestDB(t)

	project := model.Project{Name: "Marketing", Color: "#3B82F6", Icon: "briefcase"}
	statuses, err := CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)

	require.Len(t, statuses, 4)
	wantNames := []string{"A Fazer", "Em Andamento", "Revisão", "Concluído"}
	wantTypes := []string{"not_started", "active", "active", "done"}
	for i, s := range statuses {
		assert.Equal(t, project.ID, s.ProjectID)
		assert.Equal(t, i, s.OrderIndex)
		assert.Equal(t, wantNames[i], s.Name)
		assert.Equal(t, wantTypes[i], s.Type)
	}

	var count int64
	db.Model(&model.TaskStatus{}).Where("project_id = ?", project.ID).Count(&count)
	assert.EqualValues(t, 4, count)
}

func TestFirstProjectStatus(t *testing.T) {
	db := openTestDB(t)

	project := model.Project{Name: "Marketing"}
	_, err := CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)

	first, err := FirstProjectStatus(db, project.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "A Fazer", first.Name)
	assert.Equal(t, 0, first.OrderIndex)

	empty := model.Project{Name: "Empty"}
	require.NoError(t, db.Create(&empty).Error)
	first, err = FirstProjectStatus(db, empty.ID)
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestDeleteProjectCascade(t *testing.T) {
	db := openTestDB(t)

	project := model.Project{Name: "Marketing"}
	statuses, err := CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)

	task := model.Task{Title: "Draft post", ProjectID: &project.ID, StatusID: &statuses[0].ID}
	require.NoError(t, db.Create(&task).Error)

	other := model.Project{Name: "Keep"}
	_, err = CreateProjectWithDefaults(db, &other)
	require.NoError(t, err)
	kept := model.Task{Title: "Keep me", ProjectID: &other.ID}
	require.NoError(t, db.Create(&kept).Error)

	require.NoError(t, DeleteProjectCascade(db, project.ID))

	var taskCount, statusCount, projectCount int64
	db.Model(&model.Task{}).Where("project_id = ?", project.ID).Count(&taskCount)
	db.Model(&model.TaskStatus{}).Where("project_id = ?", project.ID).Count(&statusCount)
	db.Model(&model.Project{}).Where("id = ?", project.ID).Count(&projectCount)
	assert.Zero(t, taskCount)
	assert.Zero(t, statusCount)
	assert.Zero(t, projectCount)

	var keptCount int64
	db.Model(&model.Task{}).Where("project_id = ?", other.ID).Count(&keptCount)
	assert.EqualValues(t, 1, keptCount)
}

// Full walk of the default lifecycle: create project, drop a task on its
// first column, move it to done, find it in the synthetic done bucket.
func TestProjectTaskLifecycle(t *testing.T) {
	db := openTestDB(t)

	project := model.Project{Name: "Marketing", Color: "#3B82F6"}
	statuses, err := CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)

	first, err := FirstProjectStatus(db, project.ID)
	require.NoError(t, err)
	task := model.Task{Title: "Draft post", ProjectID: &project.ID, StatusID: &first.ID}
	require.NoError(t, db.Create(&task).Error)
	assert.Equal(t, "A Fazer", first.Name)

	doneID := statuses[3].ID
	require.NoError(t, db.Model(&task).Update("status_id", doneID).Error)

	var allStatuses []model.TaskStatus
	require.NoError(t, db.Find(&allStatuses).Error)
	var allTasks []model.Task
	require.NoError(t, db.Find(&allTasks).Error)

	columns := KanbanColumns(allTasks, allStatuses, ProjectAll)
	require.Len(t, columns[2].Tasks, 1)
	assert.Equal(t, task.ID, columns[2].Tasks[0].ID)
	assert.Equal(t, "done", columns[2].Type)
}
