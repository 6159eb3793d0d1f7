package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestKnowledgeContextFormatsSources(t *testing.T) {
	metadata := datatypes.JSONMap{
		"ai_knowledge_base": []interface{}{
			map[string]interface{}{"source": "Playbook", "content": "Vendas fecham em call."},
			map[string]interface{}{"source": "FAQ", "content": "Suporte responde em 24h."},
		},
	}

	got := KnowledgeContext(metadata)
	assert.Equal(t, "[FONTE: Playbook]: Vendas fecham em call.\n\n[FONTE: FAQ]: Suporte responde em 24h.", got)
}

func TestKnowledgeContextFallsBackWhenEmpty(t *testing.T) {
	fallback := "Não há base de conhecimento específica carregada. Responda com conhecimentos gerais de negócios."

	assert.Equal(t, fallback, KnowledgeContext(datatypes.JSONMap{}))
	assert.Equal(t, fallback, KnowledgeContext(datatypes.JSONMap{"ai_knowledge_base": []interface{}{}}))
	assert.Equal(t, fallback, KnowledgeContext(datatypes.JSONMap{"ai_knowledge_base": []interface{}{"not a map"}}))
}

func TestGeminiClientIsShared(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")

	first, err := geminiClient(context.Background())
	require.NoError(t, err)
	second, err := geminiClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}
