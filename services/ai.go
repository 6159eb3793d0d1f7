package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
	"gorm.io/datatypes"
)

const geminiModel = "gemini-1.5-flash"

var (
	geminiOnce      sync.Once
	sharedGemini    *genai.Client
	sharedGeminiErr error
)

// geminiClient returns the process-wide Gemini client, built on first use.
func geminiClient(ctx context.Context) (*genai.Client, error) {
	geminiOnce.Do(func() {
		godotenv.Load()
		sharedGemini, sharedGeminiErr = genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	})
	return sharedGemini, sharedGeminiErr
}

// KnowledgeContext flattens the ai_knowledge_base entries of a user's
// metadata bag into the context block fed to the model.
func KnowledgeContext(metadata datatypes.JSONMap) string {
	kb, ok := metadata["ai_knowledge_base"].([]interface{})
	if !ok || len(kb) == 0 {
		return "Não há base de conhecimento específica carregada. Responda com conhecimentos gerais de negócios."
	}
	parts := make([]string, 0, len(kb))
	for _, raw := range kb {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		source, _ := item["source"].(string)
		content, _ := item["content"].(string)
		parts = append(parts, fmt.Sprintf("[FONTE: %s]: %s", source, content))
	}
	if len(parts) == 0 {
		return "Não há base de conhecimento específica carregada. Responda com conhecimentos gerais de negócios."
	}
	return strings.Join(parts, "\n\n")
}

// GenerateChatReply sends the user message to Gemini with the company
// knowledge base as system instruction.
func GenerateChatReply(ctx context.Context, knowledgeContext, userMessage string) (string, error) {
	client, err := geminiClient(ctx)
	if err != nil {
		return "", err
	}

	systemPrompt := fmt.Sprintf(`Você é o assistente inteligente da Zenit Manager.
Sua função é ajudar a equipe com base no seguinte CONTEXTO DA EMPRESA:

%s

Se a resposta não estiver no contexto, use seu conhecimento geral mas avise que não encontrou na base interna.
Seja direto, útil e profissional.`, knowledgeContext)

	mdl := client.GenerativeModel(geminiModel)
	mdl.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := mdl.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text == "" {
		text = "Desculpe, não consegui processar a resposta."
	}
	return text, nil
}

// GenerateContentIdeas asks Gemini for five headline ideas on a topic and
// returns them line by line, blanks dropped.
func GenerateContentIdeas(ctx context.Context, knowledgeContext, topic string) ([]string, error) {
	client, err := geminiClient(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Você é um estrategista de conteúdo sênior.
CONTEXTO DA EMPRESA (Base de Conhecimento): %s
TAREFA: Gere 5 ideias de títulos/headlines criativas e virais para a plataforma Instagram/TikTok sobre o tema: %q.
FORMATO DE RESPOSTA: Retorne APENAS a lista com os 5 títulos, um por linha.`, knowledgeContext, topic)

	resp, err := client.GenerativeModel(geminiModel).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	ideas := []string{}
	for _, line := range strings.Split(responseText(resp), "\n") {
		if strings.TrimSpace(line) != "" {
			ideas = append(ideas, line)
		}
	}
	return ideas, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
