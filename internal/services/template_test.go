package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		variables map[string]any
		want      string
	}{
		{
			name:      "replaces known variables",
			template:  "Olá {{contact_name}}, o cartão {{card_title}} foi movido",
			variables: map[string]any{"contact_name": "Maria", "card_title": "Orçamento"},
			want:      "Olá Maria, o cartão Orçamento foi movido",
		},
		{
			name:      "unknown variable stays intact",
			template:  "Quadro: {{board_title}}, extra: {{unknown_var}}",
			variables: map[string]any{"board_title": "Vendas"},
			want:      "Quadro: Vendas, extra: {{unknown_var}}",
		},
		{
			name:      "nil value stays intact",
			template:  "Valor: {{amount}}",
			variables: map[string]any{"amount": nil},
			want:      "Valor: {{amount}}",
		},
		{
			name:      "non-string values are stringified",
			template:  "Total: {{count}}",
			variables: map[string]any{"count": 42},
			want:      "Total: 42",
		},
		{
			name:      "repeated variable replaced everywhere",
			template:  "{{name}} e {{name}}",
			variables: map[string]any{"name": "Ana"},
			want:      "Ana e Ana",
		},
		{
			name:      "no variables at all",
			template:  "Mensagem fixa",
			variables: nil,
			want:      "Mensagem fixa",
		},
		{
			name:      "malformed token is ignored",
			template:  "{{card title}} e {{card_title}}",
			variables: map[string]any{"card_title": "OK"},
			want:      "{{card title}} e OK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RenderTemplate(tt.template, tt.variables))
		})
	}
}

func TestExtractTemplateTokens(t *testing.T) {
	tokens := ExtractTemplateTokens("{{a}} texto {{b}} mais {{a}}")
	require.Equal(t, []string{"{{a}}", "{{b}}", "{{a}}"}, tokens)

	require.Empty(t, ExtractTemplateTokens("sem variáveis"))
}

func TestTemplateTokensPreserved(t *testing.T) {
	original := "Olá {{contact_name}}, cartão {{card_title}} em {{column_title}}"

	t.Run("identical tokens pass", func(t *testing.T) {
		rewritten := "Oi {{contact_name}}! Seu cartão {{card_title}} chegou em {{column_title}} :)"
		require.True(t, TemplateTokensPreserved(original, rewritten))
	})

	t.Run("dropped token fails", func(t *testing.T) {
		rewritten := "Oi {{contact_name}}! Cartão movido para {{column_title}}"
		require.False(t, TemplateTokensPreserved(original, rewritten))
	})

	t.Run("renamed token fails", func(t *testing.T) {
		rewritten := "Olá {{contact}}, cartão {{card_title}} em {{column_title}}"
		require.False(t, TemplateTokensPreserved(original, rewritten))
	})

	t.Run("reordered tokens fail", func(t *testing.T) {
		rewritten := "Cartão {{card_title}} de {{contact_name}} em {{column_title}}"
		require.False(t, TemplateTokensPreserved(original, rewritten))
	})
}
