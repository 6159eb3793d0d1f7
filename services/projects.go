package services

import (
	"zenitmanager/model"

	"gorm.io/gorm"
)

// DefaultStatuses returns the four statuses provisioned for every new
// project, order_index 0 through 3.
func DefaultStatuses(projectID string) []model.TaskStatus {
	return []model.TaskStatus{
		{ProjectID: projectID, Name: "A Fazer", Color: "#9CA3AF", Type: "not_started", OrderIndex: 0},
		{ProjectID: projectID, Name: "Em Andamento", Color: "#3B82F6", Type: "active", OrderIndex: 1},
		{ProjectID: projectID, Name: "Revisão", Color: "#F59E0B", Type: "active", OrderIndex: 2},
		{ProjectID: projectID, Name: "Concluído", Color: "#10B981", Type: "done", OrderIndex: 3},
	}
}

// CreateProjectWithDefaults inserts the project and then its default
// statuses. A status insert failure leaves the project in place with no
// statuses; the caller reports the error.
func CreateProjectWithDefaults(db *gorm.DB, project *model.Project) ([]model.TaskStatus, error) {
	if err := db.Create(project).Error; err != nil {
		return nil, err
	}
	statuses := DefaultStatuses(project.ID)
	if err := db.Create(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// DeleteProjectCascade removes tasks, then statuses, then the project, in
// that order. Deliberately not transactional to match the sequential
// best-effort delete the client always performed.
func DeleteProjectCascade(db *gorm.DB, projectID string) error {
	if err := db.Where("project_id = ?", projectID).Delete(&model.Task{}).Error; err != nil {
		return err
	}
	if err := db.Where("project_id = ?", projectID).Delete(&model.TaskStatus{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", projectID).Delete(&model.Project{}).Error
}

// FirstProjectStatus fetches the lowest order_index status of a project
// straight from the database.
func FirstProjectStatus(db *gorm.DB, projectID string) (*model.TaskStatus, error) {
	var status model.TaskStatus
	err := db.Where("project_id = ?", projectID).Order("order_index asc").First(&status).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}
