package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureDataset(t *testing.T) {
	projects, statuses, tasks := FixtureDataset()

	assert.Len(t, projects, 3)
	assert.Len(t, statuses, 4)
	assert.Len(t, tasks, 2)

	// Every status belongs to the first project, ordered 0..3.
	for i, s := range statuses {
		assert.Equal(t, projects[0].ID, s.ProjectID)
		assert.Equal(t, i, s.OrderIndex)
	}

	// Every task resolves to a known status and project.
	byStatus := map[string]bool{}
	for _, s := range statuses {
		byStatus[s.ID] = true
	}
	byProject := map[string]bool{}
	for _, p := range projects {
		byProject[p.ID] = true
	}
	for _, task := range tasks {
		require.NotNil(t, task.StatusID)
		assert.True(t, byStatus[*task.StatusID])
		require.NotNil(t, task.ProjectID)
		assert.True(t, byProject[*task.ProjectID])
	}

	require.Len(t, tasks[0].Checklists, 1)
	assert.Equal(t, "Processo de Onboarding", tasks[0].Checklists[0].Name)
	assert.Len(t, tasks[0].Checklists[0].Items, 3)
}

func TestFixtureDatasetProjects(t *testing.T) {
	projects, _, _ := FixtureDataset()
	assert.Equal(t, "Geral", projects[0].Name)
	assert.Equal(t, "#3B82F6", projects[0].Color)
	assert.Equal(t, "Alunos Zenit", projects[1].Name)
	assert.Equal(t, "Conteúdo", projects[2].Name)
}
