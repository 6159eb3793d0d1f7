package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"zenitmanager/controller/auth"
	"zenitmanager/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTest(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.StudentMetric{},
		&model.Transaction{},
		&model.Task{},
	))

	user := model.User{Name: "Eu", Email: "eu@zenit.com", HashedPassword: "x", Role: "member"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.CreateAccessToken(user.UserID, user.Role)
	require.NoError(t, err)

	router := gin.New()
	ContactController(router, db)
	MetricsController(router, db)
	StudentTaskController(router, db)
	return router, db, token
}

func send(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateContactAutoInvoice(t *testing.T) {
	router, db, token := setupContactTest(t)

	purchase := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	recorder := send(t, router, http.MethodPost, "/contacts", token, gin.H{
		"full_name":     "Ana Souza",
		"type":          "student",
		"purchase_date": purchase.Format(time.RFC3339),
		"auto_finance":  true,
		"finance_value": 1997.0,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var contact model.Contact
	require.NoError(t, db.Where("full_name = ?", "Ana Souza").First(&contact).Error)

	var invoice model.Transaction
	require.NoError(t, db.Where("contact_id = ?", contact.ID).First(&invoice).Error)
	assert.Equal(t, "Venda - Ana Souza", invoice.Description)
	assert.Equal(t, "income", invoice.Type)
	assert.Equal(t, "pending", invoice.Status)
	assert.Equal(t, "Vendas", invoice.Category)
	assert.Equal(t, 1997.0, invoice.Amount)
	assert.True(t, invoice.DueDate.Equal(purchase))
}

func TestCreateContactWithoutAutoFinanceSkipsInvoice(t *testing.T) {
	router, db, token := setupContactTest(t)

	recorder := send(t, router, http.MethodPost, "/contacts", token, gin.H{
		"full_name": "Bruno Lima",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var contact model.Contact
	require.NoError(t, db.Where("full_name = ?", "Bruno Lima").First(&contact).Error)
	assert.Equal(t, "lead", contact.Type)
	assert.Equal(t, "active", contact.Status)

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestContactInvoiceDefaultsDescription(t *testing.T) {
	router, db, token := setupContactTest(t)

	contact := model.Contact{FullName: "Carla Dias", Type: "student", Status: "active"}
	require.NoError(t, db.Create(&contact).Error)

	recorder := send(t, router, http.MethodPost, "/contacts/"+contact.ID+"/transactions", token, gin.H{
		"amount": 450.0,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var invoice model.Transaction
	require.NoError(t, db.Where("contact_id = ?", contact.ID).First(&invoice).Error)
	assert.Equal(t, "Venda - Carla Dias", invoice.Description)
}

func TestCreateMetricRaisesLTV(t *testing.T) {
	router, db, token := setupContactTest(t)

	contact := model.Contact{FullName: "Diego Reis", Type: "student", Status: "active", LTV: 1000}
	require.NoError(t, db.Create(&contact).Error)

	recorder := send(t, router, http.MethodPost, "/contacts/"+contact.ID+"/metrics", token, gin.H{
		"month_year":        "2026-08",
		"sales_count":       3,
		"revenue_generated": 2500.0,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var reloaded model.Contact
	require.NoError(t, db.Where("id = ?", contact.ID).First(&reloaded).Error)
	assert.Equal(t, 3500.0, reloaded.LTV)

	// Zero revenue leaves LTV alone.
	recorder = send(t, router, http.MethodPost, "/contacts/"+contact.ID+"/metrics", token, gin.H{
		"month_year":      "2026-09",
		"meetings_booked": 4,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NoError(t, db.Where("id = ?", contact.ID).First(&reloaded).Error)
	assert.Equal(t, 3500.0, reloaded.LTV)
}

func TestOnboardingTemplateCreatesFourTasks(t *testing.T) {
	router, db, token := setupContactTest(t)

	contact := model.Contact{FullName: "Elisa Prado", Type: "student", Status: "active"}
	require.NoError(t, db.Create(&contact).Error)

	recorder := send(t, router, http.MethodPost, "/contacts/"+contact.ID+"/tasks/onboarding", token, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var tasks []model.Task
	require.NoError(t, db.Where("contact_id = ?", contact.ID).Find(&tasks).Error)
	require.Len(t, tasks, 4)

	titles := make(map[string]string, len(tasks))
	for _, task := range tasks {
		titles[task.Title] = task.Priority
		assert.Equal(t, "aluno_zenit", task.ContextType)
		assert.Equal(t, "Elisa Prado", task.ContextName)
	}
	assert.Equal(t, "high", titles["Enviar acesso à plataforma"])
	assert.Equal(t, "high", titles["Agendar Call de Boas-vindas"])
	assert.Equal(t, "medium", titles["Adicionar ao grupo de WhatsApp"])
	assert.Equal(t, "low", titles["Criar pasta no Drive"])
}
