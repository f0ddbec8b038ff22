package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIEmptyResponse = errors.New("AI returned an empty response")
	ErrAITokensAltered = errors.New("AI altered the template variables")
	ErrAIUnknownStyle  = errors.New("unknown rewrite style")
)

// Rewrite styles accepted by ImproveTemplate.
const (
	StyleFormal       = "formal"
	StyleDescontraido = "descontraido"
	StyleConciso      = "conciso"
	StyleCriativo     = "criativo"
)

var stylePrompts = map[string]string{
	StyleFormal:       "Reescreva este template de mensagem WhatsApp para um tom mais formal e profissional, mantendo todas as informações e variáveis originais e sem aumentar muito a quantidade de palavras:",
	StyleDescontraido: "Reescreva este template de mensagem WhatsApp em um tom mais descontraído e amigável, mantendo todas as informações e variáveis originais e sem aumentar muito a quantidade de palavras:",
	StyleConciso:      "Reescreva este template de mensagem WhatsApp de forma mais concisa e direta, mantendo todas as informações e variáveis originais e sem aumentar muito a quantidade de palavras:",
	StyleCriativo:     "Reescreva este template de mensagem WhatsApp de forma mais criativa e envolvente, mantendo todas as informações e variáveis originais e sem aumentar muito a quantidade de palavras:",
}

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// ImproveTemplate rewrites a notification template in the requested style.
// Every {{variable}} token must survive the rewrite unchanged and in the
// same relative order; a response that alters them is rejected.
func (s *AIService) ImproveTemplate(ctx context.Context, template, style string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	if style == "" {
		style = StyleCriativo
	}
	stylePrompt, ok := stylePrompts[style]
	if !ok {
		return "", ErrAIUnknownStyle
	}

	prompt := fmt.Sprintf(`%s

%s

Importante: Mantenha todas as variáveis no formato {{variable_name}} intactas e na mesma posição contextual. Não altere o formato ou o nome das variáveis. Preserve a formatação como quebras de linha e marcadores. Retorne somente o template reescrito, sem explicações.`, stylePrompt, template)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrAIEmptyResponse
	}

	improved := resp.Choices[0].Message.Content
	if improved == "" {
		return "", ErrAIEmptyResponse
	}

	if !TemplateTokensPreserved(template, improved) {
		return "", ErrAITokensAltered
	}

	return improved, nil
}

// TemplateTokensPreserved reports whether the rewritten template carries
// exactly the original's {{variable}} tokens, in the same order.
func TemplateTokensPreserved(original, rewritten string) bool {
	want := ExtractTemplateTokens(original)
	got := ExtractTemplateTokens(rewritten)

	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
