package services

import (
	"time"
	"zenitmanager/model"

	"gorm.io/datatypes"
)

// FixtureDataset returns the built-in sample board served whenever loading
// from the database fails. The view layer never receives an empty board.
func FixtureDataset() ([]model.Project, []model.TaskStatus, []model.Task) {
	now := time.Now()
	generalID := "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"
	studentsID := "b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a22"
	contentID := "c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a33"

	projects := []model.Project{
		{ID: generalID, Name: "Geral", Color: "#3B82F6", Icon: "briefcase", CreatedAt: now},
		{ID: studentsID, Name: "Alunos Zenit", Color: "#FFD000", Icon: "graduation-cap", CreatedAt: now},
		{ID: contentID, Name: "Conteúdo", Color: "#8B5CF6", Icon: "video", CreatedAt: now},
	}

	statuses := []model.TaskStatus{
		{ID: "s1", ProjectID: generalID, Name: "Backlog", Color: "#9CA3AF", Type: "not_started", OrderIndex: 0, CreatedAt: now},
		{ID: "s2", ProjectID: generalID, Name: "A Fazer", Color: "#6B7280", Type: "not_started", OrderIndex: 1, CreatedAt: now},
		{ID: "s3", ProjectID: generalID, Name: "Em Andamento", Color: "#3B82F6", Type: "active", OrderIndex: 2, CreatedAt: now},
		{ID: "s4", ProjectID: generalID, Name: "Concluída", Color: "#22C55E", Type: "done", OrderIndex: 3, CreatedAt: now},
	}

	s2, s3 := "s2", "s3"
	due1 := now.Add(24 * time.Hour)
	due2 := now.Add(48 * time.Hour)

	tasks := []model.Task{
		{
			ID:          "1",
			CustomID:    "TAR-001",
			ProjectID:   &generalID,
			Title:       "Fazer onboarding do novo aluno",
			Description: "Agendar call de boas-vindas e enviar materiais iniciais de acesso à plataforma.",
			StatusID:    &s3,
			Priority:    "high",
			DueDate:     &due1,
			ContextType: "aluno_zenit",
			ContextName: "João Silva",
			Assignees: datatypes.NewJSONSlice([]model.Assignee{
				{ID: "u1", FullName: "Eu", Email: "eu@zenit.com"},
			}),
			Tags: datatypes.NewJSONSlice([]string{"Onboarding", "Urgente"}),
			Checklists: datatypes.NewJSONSlice([]model.Checklist{
				{
					ID:     "chk-1",
					TaskID: "1",
					Name:   "Processo de Onboarding",
					Items: []model.ChecklistItem{
						{ID: "itm-1", ChecklistID: "chk-1", Content: "Enviar email de boas-vindas", IsCompleted: true},
						{ID: "itm-2", ChecklistID: "chk-1", Content: "Cadastrar na plataforma", IsCompleted: false},
						{ID: "itm-3", ChecklistID: "chk-1", Content: "Agendar call", IsCompleted: false},
					},
				},
			}),
			CreatedAt: now,
		},
		{
			ID:          "2",
			CustomID:    "CON-042",
			ProjectID:   &contentID,
			Title:       "Gravar Reels sobre Prospecção",
			Description: "Roteiro pronto no drive.",
			StatusID:    &s2,
			Priority:    "medium",
			DueDate:     &due2,
			Tags:        datatypes.NewJSONSlice([]string{"Instagram"}),
			CreatedAt:   now,
		},
	}

	return projects, statuses, tasks
}
