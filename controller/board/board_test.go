package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"zenitmanager/controller/auth"
	"zenitmanager/model"
	"zenitmanager/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBoardTest(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.TaskStatus{},
		&model.Task{},
	))

	user := model.User{Name: "Eu", Email: "eu@zenit.com", HashedPassword: "x", Role: "member"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.CreateAccessToken(user.UserID, user.Role)
	require.NoError(t, err)

	router := gin.New()
	BoardController(router, db)
	return router, db, token
}

func get(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetBoardServesFixturesWhenQueryFails(t *testing.T) {
	router, db, token := setupBoardTest(t)

	project := model.Project{Name: "Real"}
	_, err := services.CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)

	// One failing query discards everything loaded so far.
	require.NoError(t, db.Migrator().DropTable(&model.Task{}))

	recorder := get(t, router, "/board", token)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Fallback bool               `json:"fallback"`
		Projects []model.Project    `json:"projects"`
		Statuses []model.TaskStatus `json:"statuses"`
		Tasks    []model.Task       `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Fallback)
	assert.Len(t, body.Projects, 3)
	assert.Len(t, body.Statuses, 4)
	assert.Len(t, body.Tasks, 2)

	// The stored project is nowhere in the payload.
	for _, p := range body.Projects {
		assert.NotEqual(t, project.ID, p.ID)
	}
}

func TestGetBoardLoadsStoredRows(t *testing.T) {
	router, db, token := setupBoardTest(t)

	project := model.Project{Name: "Real"}
	_, err := services.CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)

	recorder := get(t, router, "/board", token)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Fallback bool            `json:"fallback"`
		Projects []model.Project `json:"projects"`
		Tasks    []model.Task    `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Fallback)
	require.Len(t, body.Projects, 1)
	assert.Equal(t, project.ID, body.Projects[0].ID)
	assert.Empty(t, body.Tasks)
}

func TestBoardViewUnknownProjectResetsToAll(t *testing.T) {
	router, db, token := setupBoardTest(t)

	project := model.Project{Name: "Real"}
	statuses, err := services.CreateProjectWithDefaults(db, &project)
	require.NoError(t, err)
	task := model.Task{Title: "feito", ProjectID: &project.ID, StatusID: &statuses[3].ID}
	require.NoError(t, db.Create(&task).Error)

	recorder := get(t, router, "/board/view?project=deleted-project&mode=kanban", token)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Project string                 `json:"project"`
		Columns []services.BoardColumn `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "all", body.Project)
	require.Len(t, body.Columns, 3)
	assert.Equal(t, "A Fazer", body.Columns[0].Name)
	assert.Equal(t, "Em Andamento", body.Columns[1].Name)
	assert.Equal(t, "Concluído", body.Columns[2].Name)

	// The done task lands in the synthetic done column.
	require.Len(t, body.Columns[2].Tasks, 1)
	assert.Equal(t, task.ID, body.Columns[2].Tasks[0].ID)
}

func TestBoardViewRejectsUnknownMode(t *testing.T) {
	router, _, token := setupBoardTest(t)

	recorder := get(t, router, "/board/view?mode=timeline", token)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
