package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhatsAppService_DryRun(t *testing.T) {
	svc := NewWhatsAppService("", "", true)

	result := svc.Send(context.Background(), "+5511999998888", "Olá")
	require.True(t, result.Success)
	require.NotEmpty(t, result.MessageID)
}

func TestWhatsAppService_MissingConfiguration(t *testing.T) {
	svc := NewWhatsAppService("", "", false)

	result := svc.Send(context.Background(), "+5511999998888", "Olá")
	require.False(t, result.Success)
	require.Equal(t, "WhatsApp API configuration is missing", result.Error)
}

func TestWhatsAppService_SendsTextMessage(t *testing.T) {
	var received struct {
		MessagingProduct string `json:"messaging_product"`
		To               string `json:"to"`
		Type             string `json:"type"`
		Text             struct {
			Body string `json:"body"`
		} `json:"text"`
	}
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.abc123"}]}`))
	}))
	defer server.Close()

	svc := NewWhatsAppService(server.URL, "token-123", false)

	result := svc.Send(context.Background(), "+5511999998888", "Olá Maria")
	require.True(t, result.Success)
	require.Equal(t, "wamid.abc123", result.MessageID)

	require.Equal(t, "Bearer token-123", authHeader)
	require.Equal(t, "whatsapp", received.MessagingProduct)
	require.Equal(t, "+5511999998888", received.To)
	require.Equal(t, "text", received.Type)
	require.Equal(t, "Olá Maria", received.Text.Body)
}

func TestWhatsAppService_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	svc := NewWhatsAppService(server.URL, "token-123", false)

	result := svc.Send(context.Background(), "+5511999998888", "Olá")
	require.False(t, result.Success)
	require.Equal(t, "API responded with status 500", result.Error)
}
